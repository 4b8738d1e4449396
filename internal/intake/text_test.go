package intake

import (
	"strings"
	"testing"
)

func TestTextParser_ParagraphsAndHeadings(t *testing.T) {
	input := `# Title
A Study

# Introduction

First paragraph.

Second paragraph.
`
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", doc.Title)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(doc.Blocks), doc.Blocks)
	}

	if doc.Blocks[0].Heading != "Title" || doc.Blocks[0].Text != "A Study" {
		t.Errorf("first block: %+v", doc.Blocks[0])
	}
	if doc.Blocks[1].Heading != "Introduction" {
		t.Errorf("second block heading: %q", doc.Blocks[1].Heading)
	}
	if doc.Blocks[1].Text != "First paragraph.\n\nSecond paragraph." {
		t.Errorf("second block text: %q", doc.Blocks[1].Text)
	}
}

func TestTextParser_PreambleWithoutHeading(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("Leading text.\n\n# Later\nBody."), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %+v", doc.Blocks)
	}
	if doc.Blocks[0].Heading != "" || doc.Blocks[0].Text != "Leading text." {
		t.Errorf("preamble block: %+v", doc.Blocks[0])
	}
	if doc.Blocks[1].Heading != "Later" {
		t.Errorf("heading block: %+v", doc.Blocks[1])
	}
}

func TestTextParser_MarkerRepetitionIgnored(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("### Deep Heading\ntext"), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Heading != "Deep Heading" {
		t.Errorf("blocks: %+v", doc.Blocks)
	}
}

func TestTextParser_Empty(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Blocks) != 0 {
		t.Errorf("expected no blocks, got %+v", doc.Blocks)
	}
}
