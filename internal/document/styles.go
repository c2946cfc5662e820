package document

// Styles is the per-document style object stored alongside the bindings.
type Styles struct {
	FontFamily   string  `json:"fontFamily"`
	FontSize     int     `json:"fontSize"`
	LineHeight   float64 `json:"lineHeight"`
	TextColor    string  `json:"textColor"`
	HeadingColor string  `json:"headingColor"`
	PageMargin   int     `json:"pageMargin"`
}

// DefaultStyles is the fallback used whenever a document carries no style
// object or its style portion fails to parse.
func DefaultStyles() Styles {
	return Styles{
		FontFamily:   "Georgia, 'Times New Roman', serif",
		FontSize:     14,
		LineHeight:   1.6,
		TextColor:    "#1f2937",
		HeadingColor: "#111827",
		PageMargin:   48,
	}
}

// Normalize fills zero-valued fields from the defaults so a partially
// specified style object still renders.
func (s Styles) Normalize() Styles {
	defaults := DefaultStyles()
	if s.FontFamily == "" {
		s.FontFamily = defaults.FontFamily
	}
	if s.FontSize <= 0 {
		s.FontSize = defaults.FontSize
	}
	if s.LineHeight <= 0 {
		s.LineHeight = defaults.LineHeight
	}
	if s.TextColor == "" {
		s.TextColor = defaults.TextColor
	}
	if s.HeadingColor == "" {
		s.HeadingColor = defaults.HeadingColor
	}
	if s.PageMargin <= 0 {
		s.PageMargin = defaults.PageMargin
	}
	return s
}
