package intake

import (
	"bufio"
	"io"
	"strings"

	"github.com/krisrjensen/publication-style-config-server/internal/manuscript"
)

// TextParser handles plain text manuscripts. Paragraphs separated by
// blank lines become individual body blocks; lines already carrying the
// header marker pass through as headings.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*manuscript.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var b blockBuilder
	var current strings.Builder

	flushParagraph := func() {
		if current.Len() > 0 {
			b.addText(current.String())
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flushParagraph()
		case strings.HasPrefix(trimmed, "#"):
			flushParagraph()
			b.startBlock(strings.TrimSpace(strings.TrimLeft(trimmed, "#")))
		default:
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flushParagraph()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return b.document(baseTitle(filename, ".txt")), nil
}
