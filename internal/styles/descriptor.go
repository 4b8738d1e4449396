// Package styles manages publication style descriptors: a built-in
// immutable default set (IEEE, Nature, APA) plus custom styles persisted
// as JSON files. The content processor consumes styles only as opaque
// identifiers; this package serves the configuration surface.
package styles

// Margins are the page margins, with units (e.g. "1in").
type Margins struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

// HeaderStyle describes the title/author/abstract block typography.
type HeaderStyle struct {
	FontSize     string `json:"font_size"`
	FontWeight   string `json:"font_weight"`
	Alignment    string `json:"alignment"`
	SpacingAfter string `json:"spacing_after,omitempty"`
	Indent       string `json:"indent,omitempty"`
}

// SectionStyle describes a heading level's typography and numbering.
type SectionStyle struct {
	FontSize      string `json:"font_size"`
	FontWeight    string `json:"font_weight"`
	Alignment     string `json:"alignment"`
	Numbering     string `json:"numbering"`
	SpacingBefore string `json:"spacing_before"`
	SpacingAfter  string `json:"spacing_after"`
}

// ReferenceStyle describes the bibliography block.
type ReferenceStyle struct {
	Format        string `json:"format"`
	FontSize      string `json:"font_size"`
	HangingIndent string `json:"hanging_indent"`
}

// Caption describes figure or table caption formatting.
type Caption struct {
	Prefix        string `json:"prefix"`
	FontSize      string `json:"font_size"`
	Alignment     string `json:"alignment"`
	SpacingBefore string `json:"spacing_before,omitempty"`
	SpacingAfter  string `json:"spacing_after,omitempty"`
}

// Descriptor is a complete publication style: typography, layout, and
// caption rules for one journal or format family.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FontFamily  string `json:"font_family"`
	FontSize    string `json:"font_size"`
	LineSpacing string `json:"line_spacing"`
	ColumnCount int    `json:"column_count"`

	PageMargins   Margins                 `json:"page_margins"`
	HeaderStyles  map[string]HeaderStyle  `json:"header_styles"`
	SectionStyles map[string]SectionStyle `json:"section_styles"`

	ReferenceStyle ReferenceStyle `json:"reference_style"`
	FigureCaption  Caption        `json:"figure_caption"`
	TableCaption   Caption        `json:"table_caption"`
}

// Overview is the listing form of a style.
type Overview struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Source tags for where a style came from.
const (
	SourceDefault = "default"
	SourceCustom  = "custom"
)
