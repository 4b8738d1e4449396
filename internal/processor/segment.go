package processor

import (
	"regexp"
	"strings"
)

// headerMarker is the character that introduces a section header line.
const headerMarker = "#"

// defaultSection names the implicit section that collects content
// appearing before any header line.
const defaultSection = "introduction"

// Segment splits raw manuscript text into a map of normalized section
// name to body text, plus the section names in order of first
// appearance. A line whose stripped form starts with the header marker
// opens a new section regardless of how many markers it carries. Blank
// lines are dropped, so paragraph breaks inside a section are not
// preserved. Sections that end up empty are not emitted.
func Segment(content string) (map[string]string, []string) {
	sections := make(map[string]string)
	var order []string
	current := defaultSection
	var body []string

	flush := func() {
		if len(body) > 0 {
			if _, ok := sections[current]; !ok {
				order = append(order, current)
			}
			sections[current] = strings.TrimSpace(strings.Join(body, "\n"))
			body = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, headerMarker) {
			flush()
			header := strings.ToLower(strings.TrimSpace(strings.TrimLeft(line, headerMarker)))
			current = NormalizeSectionName(header)
			continue
		}
		if line != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections, order
}

// sectionSynonyms maps lower-cased header text to canonical section
// names. Headers not in the table fall through to underscore collapsing.
var sectionSynonyms = map[string]string{
	"abstract":           "abstract",
	"introduction":       "introduction",
	"background":         "background",
	"literature review":  "literature_review",
	"methodology":        "methodology",
	"methods":            "methodology",
	"approach":           "approach",
	"experiments":        "experiments",
	"experimental setup": "experiments",
	"results":            "results",
	"findings":           "findings",
	"discussion":         "discussion",
	"analysis":           "analysis",
	"conclusion":         "conclusion",
	"conclusions":        "conclusion",
	"references":         "references",
	"bibliography":       "references",
	"acknowledgments":    "acknowledgments",
	"acknowledgements":   "acknowledgments",
	"appendix":           "appendices",
	"appendices":         "appendices",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeSectionName maps free-form header text to a canonical section
// identifier. Unknown headers keep their text with whitespace runs
// collapsed to single underscores, so documents may introduce sections no
// template declares.
func NormalizeSectionName(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	if canonical, ok := sectionSynonyms[header]; ok {
		return canonical
	}
	return whitespaceRun.ReplaceAllString(header, "_")
}
