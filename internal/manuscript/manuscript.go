// Package manuscript models a parsed manuscript as a flat sequence of
// heading/body blocks, independent of the upload format it came from.
package manuscript

import "strings"

// Block is one section of a manuscript: an optional heading and its
// body text.
type Block struct {
	Heading string
	Text    string
}

// Document is a parsed manuscript.
type Document struct {
	Title  string
	Blocks []Block
}

// MarkupText renders the document as header-delimited text, the form
// the content processor consumes: each heading becomes a "# heading"
// line followed by the block body.
func (d *Document) MarkupText() string {
	var b strings.Builder
	for _, block := range d.Blocks {
		if block.Heading != "" {
			b.WriteString("# ")
			b.WriteString(block.Heading)
			b.WriteString("\n")
		}
		if block.Text != "" {
			b.WriteString(block.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}
