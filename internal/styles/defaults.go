package styles

func defaultStyles() map[string]Descriptor {
	return map[string]Descriptor{
		"ieee": {
			Name:        "IEEE",
			Description: "Institute of Electrical and Electronics Engineers style",
			FontFamily:  "Times New Roman",
			FontSize:    "10pt",
			LineSpacing: "1.0",
			ColumnCount: 2,
			PageMargins: Margins{Top: "0.75in", Bottom: "1in", Left: "0.625in", Right: "0.625in"},
			HeaderStyles: map[string]HeaderStyle{
				"title":    {FontSize: "14pt", FontWeight: "bold", Alignment: "center", SpacingAfter: "12pt"},
				"author":   {FontSize: "12pt", FontWeight: "normal", Alignment: "center", SpacingAfter: "6pt"},
				"abstract": {FontSize: "9pt", FontWeight: "bold", Alignment: "justify", Indent: "0.25in"},
			},
			SectionStyles: map[string]SectionStyle{
				"heading1": {FontSize: "10pt", FontWeight: "bold", Alignment: "left", Numbering: "roman_upper", SpacingBefore: "12pt", SpacingAfter: "6pt"},
				"heading2": {FontSize: "10pt", FontWeight: "bold", Alignment: "left", Numbering: "alpha_upper", SpacingBefore: "6pt", SpacingAfter: "3pt"},
			},
			ReferenceStyle: ReferenceStyle{Format: "ieee_numeric", FontSize: "9pt", HangingIndent: "0.25in"},
			FigureCaption:  Caption{Prefix: "Fig.", FontSize: "9pt", Alignment: "center", SpacingBefore: "6pt"},
			TableCaption:   Caption{Prefix: "TABLE", FontSize: "9pt", Alignment: "center", SpacingAfter: "6pt"},
		},
		"nature": {
			Name:        "Nature",
			Description: "Nature journal publication style",
			FontFamily:  "Times New Roman",
			FontSize:    "12pt",
			LineSpacing: "1.5",
			ColumnCount: 1,
			PageMargins: Margins{Top: "1in", Bottom: "1in", Left: "1in", Right: "1in"},
			HeaderStyles: map[string]HeaderStyle{
				"title":    {FontSize: "16pt", FontWeight: "bold", Alignment: "left", SpacingAfter: "18pt"},
				"author":   {FontSize: "12pt", FontWeight: "normal", Alignment: "left", SpacingAfter: "12pt"},
				"abstract": {FontSize: "11pt", FontWeight: "normal", Alignment: "justify", SpacingAfter: "18pt"},
			},
			SectionStyles: map[string]SectionStyle{
				"heading1": {FontSize: "14pt", FontWeight: "bold", Alignment: "left", Numbering: "none", SpacingBefore: "18pt", SpacingAfter: "12pt"},
				"heading2": {FontSize: "12pt", FontWeight: "bold", Alignment: "left", Numbering: "none", SpacingBefore: "12pt", SpacingAfter: "6pt"},
			},
			ReferenceStyle: ReferenceStyle{Format: "nature_numeric", FontSize: "10pt", HangingIndent: "0.5in"},
			FigureCaption:  Caption{Prefix: "Figure", FontSize: "10pt", Alignment: "left", SpacingBefore: "6pt"},
			TableCaption:   Caption{Prefix: "Table", FontSize: "10pt", Alignment: "left", SpacingAfter: "6pt"},
		},
		"apa": {
			Name:        "APA",
			Description: "American Psychological Association style",
			FontFamily:  "Times New Roman",
			FontSize:    "12pt",
			LineSpacing: "2.0",
			ColumnCount: 1,
			PageMargins: Margins{Top: "1in", Bottom: "1in", Left: "1in", Right: "1in"},
			HeaderStyles: map[string]HeaderStyle{
				"title":    {FontSize: "12pt", FontWeight: "bold", Alignment: "center", SpacingAfter: "12pt"},
				"author":   {FontSize: "12pt", FontWeight: "normal", Alignment: "center", SpacingAfter: "12pt"},
				"abstract": {FontSize: "12pt", FontWeight: "normal", Alignment: "justify", SpacingAfter: "12pt"},
			},
			SectionStyles: map[string]SectionStyle{
				"heading1": {FontSize: "12pt", FontWeight: "bold", Alignment: "center", Numbering: "none", SpacingBefore: "12pt", SpacingAfter: "12pt"},
				"heading2": {FontSize: "12pt", FontWeight: "bold", Alignment: "left", Numbering: "none", SpacingBefore: "12pt", SpacingAfter: "6pt"},
			},
			ReferenceStyle: ReferenceStyle{Format: "apa", FontSize: "12pt", HangingIndent: "0.5in"},
			FigureCaption:  Caption{Prefix: "Figure", FontSize: "12pt", Alignment: "left", SpacingBefore: "6pt"},
			TableCaption:   Caption{Prefix: "Table", FontSize: "12pt", Alignment: "left", SpacingAfter: "6pt"},
		},
	}
}
