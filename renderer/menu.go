package renderer

import (
	"strconv"

	md "github.com/nao1215/markdown"
)

// MenuItem is a numbered menu entry.
type MenuItem struct {
	Key   int
	Label string
}

// Menu renders the main menu.
func Menu(items []MenuItem) string {
	doc := newDoc("Welcome to Your Personalized Finance Manager")
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{strconv.Itoa(it.Key), it.Label})
	}
	doc.Table(md.TableSet{
		Header:    []string{"Option", "Action"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft},
	})
	return doc.String()
}
