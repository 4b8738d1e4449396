package processor

import (
	"fmt"
	"strings"

	"github.com/krisrjensen/publication-style-config-server/internal/template"
)

// Validate checks segmented sections against a template descriptor. Each
// rule is independent: a missing required section invalidates the
// document, while unexpected sections and abstract word overage only
// warn. Section order is not checked; EnforceOrder influences TOC
// presentation only.
func Validate(sections map[string]string, tmpl template.Descriptor) Report {
	report := Report{
		Valid:              true,
		Errors:             []string{},
		Warnings:           []string{},
		MissingRequired:    []string{},
		UnexpectedSections: []string{},
	}

	for _, required := range tmpl.RequiredSections {
		if _, ok := sections[required]; !ok {
			report.MissingRequired = append(report.MissingRequired, required)
			report.Errors = append(report.Errors, fmt.Sprintf("Missing required section: %s", required))
			report.Valid = false
		}
	}

	allowed := make(map[string]bool, len(tmpl.Sections))
	for _, name := range tmpl.Sections {
		allowed[name] = true
	}
	for _, name := range sortedKeys(sections) {
		if !allowed[name] {
			report.UnexpectedSections = append(report.UnexpectedSections, name)
			report.Warnings = append(report.Warnings, fmt.Sprintf("Unexpected section: %s", name))
		}
	}

	if abstract, ok := sections["abstract"]; ok && tmpl.MaxAbstractWords > 0 {
		words := len(strings.Fields(abstract))
		if words > tmpl.MaxAbstractWords {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"Abstract exceeds maximum word count: %d/%d", words, tmpl.MaxAbstractWords))
		}
	}

	return report
}
