// Package processor implements the content-parsing and
// template-validation core: segmentation of header-delimited manuscript
// text, section name normalization, citation/equation/reference
// annotation, template-conformance validation, and the assembled result
// model.
package processor

import (
	"github.com/google/uuid"

	"github.com/krisrjensen/publication-style-config-server/internal/template"
)

// Processor runs the single-pass content pipeline. It holds no
// per-request state; concurrent calls are independent.
type Processor struct {
	templates *template.Registry
}

// New creates a processor backed by the given template registry.
func New(templates *template.Registry) *Processor {
	return &Processor{templates: templates}
}

// Templates exposes the registry for boundary lookups.
func (p *Processor) Templates() *template.Registry {
	return p.templates
}

// Process parses content against the named template and returns the
// annotated, validated result. The style identifier is carried through
// opaquely. An unknown template type fails immediately with
// template.ErrUnsupportedTemplate and no partial result; validation
// findings never fail the call.
func (p *Processor) Process(content, templateType, styleID string) (*Result, error) {
	tmpl, err := p.templates.Lookup(templateType)
	if err != nil {
		return nil, err
	}

	raw, order := Segment(content)
	report := Validate(raw, tmpl)

	sections := make(map[string]Section, len(raw))
	for name, body := range raw {
		sections[name] = Annotate(body)
	}

	return &Result{
		TemplateType:    templateType,
		StyleName:       styleID,
		Sections:        sections,
		TableOfContents: BuildTOC(sections, tmpl),
		Citations:       SummarizeCitations(sections, order, styleID),
		Validation:      report,
		Statistics:      ComputeStatistics(sections),
		Metadata: Metadata{
			Timestamp:      timestamp(),
			ProcessingID:   uuid.NewString(),
			TemplateConfig: tmpl,
		},
	}, nil
}
