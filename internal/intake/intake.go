// Package intake converts uploaded manuscript files (Markdown, HTML,
// DOCX, PDF, plain text) into the flat manuscript model, so any
// supported format can feed the content processor.
package intake

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/krisrjensen/publication-style-config-server/internal/manuscript"
)

// Parser converts raw manuscript bytes into a manuscript document.
type Parser interface {
	Parse(r io.Reader, filename string) (*manuscript.Document, error)
}

// SupportedExtensions lists manuscript file extensions this service can
// handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".pdf":      true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// blockBuilder accumulates heading/body pairs while walking a parsed
// document in order.
type blockBuilder struct {
	doc     manuscript.Document
	heading string
	body    strings.Builder
}

func (b *blockBuilder) startBlock(heading string) {
	b.flush()
	b.heading = heading
}

func (b *blockBuilder) addText(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if b.body.Len() > 0 {
		b.body.WriteString("\n\n")
	}
	b.body.WriteString(text)
}

func (b *blockBuilder) flush() {
	text := strings.TrimSpace(b.body.String())
	if b.heading != "" || text != "" {
		b.doc.Blocks = append(b.doc.Blocks, manuscript.Block{Heading: b.heading, Text: text})
	}
	b.heading = ""
	b.body.Reset()
}

func (b *blockBuilder) document(title string) *manuscript.Document {
	b.flush()
	b.doc.Title = title
	return &b.doc
}

func baseTitle(filename string, exts ...string) string {
	for _, ext := range exts {
		filename = strings.TrimSuffix(filename, ext)
	}
	return filename
}
