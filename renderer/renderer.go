// Package renderer builds the markdown reports shown by the finance manager.
//
// Every function is pure: it reads domain values and returns markdown text.
// Printing, coloring and terminal layout are left to the caller.
package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// newDoc starts a markdown document with a level 2 title.
func newDoc(title string) *md.Markdown {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title).LF()
	return doc
}

// empty writes the sentence shown in place of an empty list.
func empty(doc *md.Markdown, text string) string {
	doc.PlainTextf("_%s_", text)
	return doc.String()
}

// bullets renders a bullet list or the empty sentence when there are no items.
func bullets(title, none string, items []string) string {
	doc := newDoc(title)
	if len(items) == 0 {
		return empty(doc, none)
	}
	doc.BulletList(items...)
	return doc.String()
}
