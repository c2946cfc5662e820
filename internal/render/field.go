package render

import (
	"fmt"
	"html"
	"strings"

	"DT-EDIT/internal/document"
)

// Mode selects the presentation branch used for every rendered segment and
// the layout strategy of the composed document. It is a render-time
// parameter, never persisted.
type Mode string

const (
	ModeEditable Mode = "editable"
	ModeReadOnly Mode = "readonly"
	ModePrinting Mode = "printing"
)

// ParseMode maps a query-string value to a Mode, defaulting to read-only.
func ParseMode(raw string) Mode {
	switch raw {
	case string(ModeEditable), "edit":
		return ModeEditable
	case string(ModePrinting), "print":
		return ModePrinting
	default:
		return ModeReadOnly
	}
}

// RenderSegment turns one parsed segment into an HTML fragment.
//
// Variable segments branch on mode: print and read-only output carries no
// editor affordances (plain emphasized value, or an italic [name]
// placeholder when unbound); editable output wraps the value in a colored
// chip, or a dashed placeholder chip in the same color family when unbound.
func RenderSegment(segment Segment, mode Mode) string {
	if segment.Kind == SegmentLiteral {
		text := html.EscapeString(segment.Text)
		if mode != ModePrinting {
			// Print output keeps raw newlines and relies on
			// white-space: pre-line in the export CSS.
			text = strings.ReplaceAll(text, "\n", "<br>")
		}
		return text
	}

	placeholder := "[" + segment.Name + "]"

	if mode == ModePrinting || mode == ModeReadOnly {
		if segment.Value != nil {
			return "<strong>" + html.EscapeString(*segment.Value) + "</strong>"
		}
		return "<em>" + html.EscapeString(placeholder) + "</em>"
	}

	family := FamilyFor(segment.Name)
	if segment.Value != nil {
		return fmt.Sprintf(
			`<span class="field-chip" data-field="%s" style="background-color:%s;border:1px solid %s;color:%s;border-radius:4px;padding:1px 4px;">%s</span>`,
			html.EscapeString(segment.Name),
			family.Background, family.Border, family.Text,
			html.EscapeString(*segment.Value),
		)
	}
	return fmt.Sprintf(
		`<span class="field-chip field-chip-empty" data-field="%s" style="background-color:%s;border:1px dashed %s;color:%s;border-radius:4px;padding:1px 4px;">%s</span>`,
		html.EscapeString(segment.Name),
		family.Background, family.Border, family.Text,
		html.EscapeString(placeholder),
	)
}

// RenderTemplate parses a template string and renders every segment in
// order.
func RenderTemplate(template string, bindings document.FieldBindings, mode Mode) string {
	var out strings.Builder
	for _, segment := range ParseTemplate(template, bindings) {
		out.WriteString(RenderSegment(segment, mode))
	}
	return out.String()
}
