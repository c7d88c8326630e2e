package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal in the given style.
//
// The "raw" style prints the markdown unchanged. When rendering fails the
// markdown is printed unchanged too.
func printMarkdown(w io.Writer, style, markdown string) {
	if style == "raw" {
		fmt.Fprintln(w, markdown)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		var out string
		if out, err = r.Render(markdown); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprintln(w, markdown)
}
