package processor

import (
	"time"

	"github.com/krisrjensen/publication-style-config-server/internal/template"
)

// Span locates a match as [start, end) byte offsets into the formatted
// section content.
type Span [2]int

// Citation is a tagged union: Type "numeric" carries Numbers, Type
// "author_year" carries Author and Year.
type Citation struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Numbers []int  `json:"numbers,omitempty"`
	Author  string `json:"author,omitempty"`
	Year    int    `json:"year,omitempty"`
	Span    Span   `json:"position"`
}

// Equation is an inline ($...$) or display ($$...$$) math span. IDs are
// sequential per section and per type, not globally unique.
type Equation struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Span    Span   `json:"position"`
	ID      string `json:"id"`
}

// Reference is a "Figure N" or "Table N" mention.
type Reference struct {
	Type   string `json:"type"`
	Number int    `json:"number"`
	Text   string `json:"text"`
	Span   Span   `json:"position"`
}

// Section is the annotated form of one parsed section.
type Section struct {
	Content           string      `json:"content"`
	WordCount         int         `json:"word_count"`
	Citations         []Citation  `json:"citations"`
	Equations         []Equation  `json:"equations"`
	References        []Reference `json:"references"`
	FormattingApplied bool        `json:"formatting_applied"`
}

// TOCEntry is one row of the generated table of contents. Page is the
// section's 1-based position in the template's declared order, not a
// real layout computation.
type TOCEntry struct {
	Section   string `json:"section"`
	Title     string `json:"title"`
	Page      int    `json:"page"`
	WordCount int    `json:"word_count"`
}

// Report is the template-conformance validation outcome. Only missing
// required sections invalidate; everything else is a warning.
type Report struct {
	Valid              bool     `json:"valid"`
	Errors             []string `json:"errors"`
	Warnings           []string `json:"warnings"`
	MissingRequired    []string `json:"missing_required"`
	UnexpectedSections []string `json:"unexpected_sections"`
}

// CitationSummary is the document-wide deduplicated citation view.
type CitationSummary struct {
	TotalCitations  int        `json:"total_citations"`
	UniqueCitations int        `json:"unique_citations"`
	CitationStyle   string     `json:"citation_style"`
	Citations       []Citation `json:"citations"`
}

// Statistics aggregates counts across all sections.
type Statistics struct {
	TotalWords       int            `json:"total_words"`
	TotalSections    int            `json:"total_sections"`
	TotalCitations   int            `json:"total_citations"`
	TotalEquations   int            `json:"total_equations"`
	TotalReferences  int            `json:"total_references"`
	SectionBreakdown map[string]int `json:"section_breakdown"`
}

// Metadata records when and under what identity a result was produced.
type Metadata struct {
	Timestamp      string              `json:"timestamp"`
	ProcessingID   string              `json:"processing_id"`
	TemplateConfig template.Descriptor `json:"template_config"`
}

// Result is the full output of one Process call.
type Result struct {
	TemplateType    string             `json:"template_type"`
	StyleName       string             `json:"style_name"`
	Sections        map[string]Section `json:"sections"`
	TableOfContents []TOCEntry         `json:"table_of_contents"`
	Citations       CitationSummary    `json:"citations"`
	Validation      Report             `json:"validation"`
	Statistics      Statistics         `json:"statistics"`
	Metadata        Metadata           `json:"metadata"`
}

func timestamp() string {
	return time.Now().Format(time.RFC3339Nano)
}
