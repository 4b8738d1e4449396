package processor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	boldPattern      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern    = regexp.MustCompile(`\*([^*]+)\*`)
	underlinePattern = regexp.MustCompile(`_([^_]+)_`)

	numericCitePattern    = regexp.MustCompile(`\[(\d+(?:,\s*\d+)*)\]`)
	authorYearCitePattern = regexp.MustCompile(`\(([A-Za-z]+(?:\s+et\s+al\.)?),?\s+(\d{4})\)`)

	inlineEqPattern  = regexp.MustCompile(`\$([^$]+)\$`)
	displayEqPattern = regexp.MustCompile(`\$\$([^$]+)\$\$`)

	figureRefPattern = regexp.MustCompile(`Figure\s+(\d+)`)
	tableRefPattern  = regexp.MustCompile(`Table\s+(\d+)`)
)

// Annotate runs the per-section formatting and extraction pass: emphasis
// normalization first, then citation, equation, and figure/table
// reference extraction against the formatted content. All spans are
// offsets into the formatted content, not the raw input.
func Annotate(body string) Section {
	formatted := applyTextFormatting(body)

	return Section{
		Content:           formatted,
		WordCount:         len(strings.Fields(formatted)),
		Citations:         extractCitations(formatted),
		Equations:         extractEquations(formatted),
		References:        extractReferences(formatted),
		FormattingApplied: true,
	}
}

// applyTextFormatting re-emits emphasis marker syntax unchanged. The
// round trip is deliberately an identity transform, kept so downstream
// consumers can rely on the content having passed through it.
func applyTextFormatting(content string) string {
	content = boldPattern.ReplaceAllString(content, "**$1**")
	content = italicPattern.ReplaceAllString(content, "*$1*")
	// ${1} keeps the trailing underscore out of the group name; "$1_"
	// would reference a group named "1_".
	content = underlinePattern.ReplaceAllString(content, "_${1}_")
	return content
}

// extractCitations finds numeric and author-year citations. Both
// patterns run over the same text; a string satisfying both yields two
// entries, and deduplication is left to the summary stage.
func extractCitations(content string) []Citation {
	citations := []Citation{}

	for _, m := range numericCitePattern.FindAllStringSubmatchIndex(content, -1) {
		numbers, ok := parseCitationNumbers(content[m[2]:m[3]])
		if !ok {
			// Malformed token inside the brackets: drop this match,
			// keep processing the section.
			continue
		}
		citations = append(citations, Citation{
			Type:    "numeric",
			Text:    content[m[0]:m[1]],
			Numbers: numbers,
			Span:    Span{m[0], m[1]},
		})
	}

	for _, m := range authorYearCitePattern.FindAllStringSubmatchIndex(content, -1) {
		year, err := strconv.Atoi(content[m[4]:m[5]])
		if err != nil {
			continue
		}
		citations = append(citations, Citation{
			Type:   "author_year",
			Text:   content[m[0]:m[1]],
			Author: content[m[2]:m[3]],
			Year:   year,
			Span:   Span{m[0], m[1]},
		})
	}

	return citations
}

func parseCitationNumbers(group string) ([]int, bool) {
	parts := strings.Split(group, ",")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		numbers = append(numbers, n)
	}
	return numbers, true
}

// extractEquations finds inline and display math spans. IDs restart at 1
// for each type in each section. The inline pattern will also match the
// inner part of a display equation; that overlap matches the historical
// behavior and is preserved.
func extractEquations(content string) []Equation {
	equations := []Equation{}

	for i, m := range inlineEqPattern.FindAllStringSubmatchIndex(content, -1) {
		equations = append(equations, Equation{
			Type:    "inline",
			Content: content[m[2]:m[3]],
			Span:    Span{m[0], m[1]},
			ID:      "eq_inline_" + strconv.Itoa(i+1),
		})
	}

	for i, m := range displayEqPattern.FindAllStringSubmatchIndex(content, -1) {
		equations = append(equations, Equation{
			Type:    "display",
			Content: content[m[2]:m[3]],
			Span:    Span{m[0], m[1]},
			ID:      "eq_display_" + strconv.Itoa(i+1),
		})
	}

	return equations
}

// extractReferences finds case-sensitive "Figure N" and "Table N"
// mentions.
func extractReferences(content string) []Reference {
	references := []Reference{}

	for _, m := range figureRefPattern.FindAllStringSubmatchIndex(content, -1) {
		n, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			continue
		}
		references = append(references, Reference{
			Type:   "figure",
			Number: n,
			Text:   content[m[0]:m[1]],
			Span:   Span{m[0], m[1]},
		})
	}

	for _, m := range tableRefPattern.FindAllStringSubmatchIndex(content, -1) {
		n, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			continue
		}
		references = append(references, Reference{
			Type:   "table",
			Number: n,
			Text:   content[m[0]:m[1]],
			Span:   Span{m[0], m[1]},
		})
	}

	return references
}
