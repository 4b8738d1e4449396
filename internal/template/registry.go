package template

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupportedTemplate is returned when a template type is not registered.
var ErrUnsupportedTemplate = errors.New("unsupported template type")

// Descriptor defines the structural contract of a document type: which
// sections it recognizes, which are mandatory, and the abstract length
// ceiling. Descriptors are static data; Lookup hands out copies.
type Descriptor struct {
	Name             string   `json:"name"`
	Sections         []string `json:"sections"`
	RequiredSections []string `json:"required_sections"`
	EnforceOrder     bool     `json:"section_order"`
	MaxAbstractWords int      `json:"max_abstract_words"`
	ReferenceFormat  string   `json:"reference_format"`
}

// Registry is the read-only table of known templates. Safe for
// unsynchronized concurrent reads after construction.
type Registry struct {
	templates map[string]Descriptor
}

// NewRegistry builds the registry with the built-in template set.
func NewRegistry() *Registry {
	return &Registry{templates: builtinTemplates()}
}

func builtinTemplates() map[string]Descriptor {
	return map[string]Descriptor{
		"article": {
			Name: "Research Article",
			Sections: []string{
				"title", "authors", "abstract", "keywords",
				"introduction", "methodology", "results",
				"discussion", "conclusion", "references",
			},
			RequiredSections: []string{"title", "authors", "abstract"},
			EnforceOrder:     true,
			MaxAbstractWords: 250,
			ReferenceFormat:  "numeric",
		},
		"conference_paper": {
			Name: "Conference Paper",
			Sections: []string{
				"title", "authors", "abstract", "keywords",
				"introduction", "approach", "experiments",
				"results", "conclusion", "references",
			},
			RequiredSections: []string{"title", "authors", "abstract"},
			EnforceOrder:     true,
			MaxAbstractWords: 150,
			ReferenceFormat:  "numeric",
		},
		"technical_report": {
			Name: "Technical Report",
			Sections: []string{
				"title", "authors", "executive_summary",
				"introduction", "background", "analysis",
				"findings", "recommendations", "appendices",
			},
			RequiredSections: []string{"title", "authors", "executive_summary"},
			EnforceOrder:     false,
			MaxAbstractWords: 500,
			ReferenceFormat:  "author_year",
		},
		"thesis": {
			Name: "Thesis/Dissertation",
			Sections: []string{
				"title_page", "abstract", "acknowledgments",
				"table_of_contents", "introduction", "literature_review",
				"methodology", "results", "discussion",
				"conclusion", "references", "appendices",
			},
			RequiredSections: []string{"title_page", "abstract", "introduction"},
			EnforceOrder:     true,
			MaxAbstractWords: 350,
			ReferenceFormat:  "author_year",
		},
	}
}

// Lookup returns a copy of the descriptor for templateType. Callers may
// mutate the returned value freely without affecting the registry.
func (r *Registry) Lookup(templateType string) (Descriptor, error) {
	d, ok := r.templates[templateType]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnsupportedTemplate, templateType)
	}
	return d.clone(), nil
}

// Names returns the registered template types in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d Descriptor) clone() Descriptor {
	out := d
	out.Sections = append([]string(nil), d.Sections...)
	out.RequiredSections = append([]string(nil), d.RequiredSections...)
	return out
}
