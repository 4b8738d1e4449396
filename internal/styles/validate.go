package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Validation is the outcome of a style configuration check. Missing
// required fields are errors; stylistic concerns are warnings.
type Validation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a style descriptor for completeness and sane values.
func Validate(desc Descriptor) Validation {
	result := Validation{Valid: true, Errors: []string{}, Warnings: []string{}}

	required := []struct {
		field string
		value string
	}{
		{"name", desc.Name},
		{"font_family", desc.FontFamily},
		{"font_size", desc.FontSize},
		{"line_spacing", desc.LineSpacing},
	}
	for _, r := range required {
		if r.value == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required field: %s", r.field))
			result.Valid = false
		}
	}

	if desc.FontSize != "" && !strings.HasSuffix(desc.FontSize, "pt") {
		result.Warnings = append(result.Warnings, `Font size should include unit (e.g., "12pt")`)
	}

	if desc.LineSpacing != "" {
		spacing, err := strconv.ParseFloat(desc.LineSpacing, 64)
		if err != nil {
			result.Errors = append(result.Errors, "Line spacing must be a number")
			result.Valid = false
		} else if spacing < 0.5 || spacing > 3.0 {
			result.Warnings = append(result.Warnings, "Line spacing outside recommended range (0.5-3.0)")
		}
	}

	margins := []struct {
		field string
		value string
	}{
		{"top", desc.PageMargins.Top},
		{"bottom", desc.PageMargins.Bottom},
		{"left", desc.PageMargins.Left},
		{"right", desc.PageMargins.Right},
	}
	for _, m := range margins {
		if m.value == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Missing margin: %s", m.field))
		}
	}

	return result
}
