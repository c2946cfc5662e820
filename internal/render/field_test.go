package render

import (
	"strings"
	"testing"

	"DT-EDIT/internal/document"
)

func TestRenderSegmentModeBranching(t *testing.T) {
	resolved := Segment{Kind: SegmentVariable, Name: "name", Value: strptr("Acme")}
	missing := Segment{Kind: SegmentVariable, Name: "amount"}

	t.Run("printing resolved is plain emphasized text", func(t *testing.T) {
		html := RenderSegment(resolved, ModePrinting)
		if !strings.Contains(html, "<strong>Acme</strong>") {
			t.Fatalf("expected plain strong value, got %q", html)
		}
		if strings.Contains(html, "dashed") || strings.Contains(html, "field-chip") {
			t.Fatalf("print output must not carry editor affordances, got %q", html)
		}
	})

	t.Run("printing missing is italic placeholder", func(t *testing.T) {
		html := RenderSegment(missing, ModePrinting)
		if !strings.Contains(html, "<em>[amount]</em>") {
			t.Fatalf("expected italic [amount], got %q", html)
		}
		if strings.Contains(html, "dashed") {
			t.Fatalf("print output must never show a dashed box, got %q", html)
		}
	})

	t.Run("readonly matches printing decoration", func(t *testing.T) {
		if got := RenderSegment(resolved, ModeReadOnly); !strings.Contains(got, "<strong>Acme</strong>") {
			t.Fatalf("expected plain strong value, got %q", got)
		}
		if got := RenderSegment(missing, ModeReadOnly); !strings.Contains(got, "<em>[amount]</em>") {
			t.Fatalf("expected italic placeholder, got %q", got)
		}
	})

	t.Run("editable resolved is a colored chip", func(t *testing.T) {
		html := RenderSegment(resolved, ModeEditable)
		family := FamilyFor("name")
		if !strings.Contains(html, "field-chip") || !strings.Contains(html, "Acme") {
			t.Fatalf("expected chip with value, got %q", html)
		}
		if !strings.Contains(html, family.Background) {
			t.Fatalf("expected deterministic family background %s, got %q", family.Background, html)
		}
	})

	t.Run("editable missing is a dashed chip in the same family", func(t *testing.T) {
		html := RenderSegment(missing, ModeEditable)
		family := FamilyFor("amount")
		if !strings.Contains(html, "dashed") || !strings.Contains(html, "[amount]") {
			t.Fatalf("expected dashed placeholder chip, got %q", html)
		}
		if !strings.Contains(html, family.Background) {
			t.Fatalf("expected family background %s, got %q", family.Background, html)
		}
	})

	t.Run("values are escaped", func(t *testing.T) {
		hostile := Segment{Kind: SegmentVariable, Name: "name", Value: strptr(`<script>`)}
		for _, mode := range []Mode{ModeEditable, ModeReadOnly, ModePrinting} {
			if html := RenderSegment(hostile, mode); strings.Contains(html, "<script>") {
				t.Fatalf("mode %s: value not escaped: %q", mode, html)
			}
		}
	})
}

func TestRenderSegmentLiteralNewlines(t *testing.T) {
	literal := Segment{Kind: SegmentLiteral, Text: "one\ntwo"}

	if html := RenderSegment(literal, ModeEditable); !strings.Contains(html, "<br>") {
		t.Errorf("editable literal should turn newlines into <br>, got %q", html)
	}
	if html := RenderSegment(literal, ModePrinting); strings.Contains(html, "<br>") {
		t.Errorf("print literal keeps raw newlines for pre-line CSS, got %q", html)
	}
}

// The full scenario: template "Hello {{name}}, you owe {{amount}}" with only
// name bound.
func TestRenderTemplateScenario(t *testing.T) {
	bindings := document.FieldBindings{"name": "Acme"}
	template := "Hello {{name}}, you owe {{amount}}"

	editable := RenderTemplate(template, bindings, ModeEditable)
	for _, want := range []string{"Hello ", "Acme", ", you owe ", "[amount]", "field-chip", "dashed"} {
		if !strings.Contains(editable, want) {
			t.Errorf("editable output missing %q:\n%s", want, editable)
		}
	}

	printed := RenderTemplate(template, bindings, ModePrinting)
	for _, want := range []string{"Hello ", "<strong>Acme</strong>", ", you owe ", "<em>[amount]</em>"} {
		if !strings.Contains(printed, want) {
			t.Errorf("print output missing %q:\n%s", want, printed)
		}
	}
	if strings.Contains(printed, "field-chip") || strings.Contains(printed, "dashed") {
		t.Errorf("print output must not contain chips:\n%s", printed)
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"editable": ModeEditable,
		"edit":     ModeEditable,
		"printing": ModePrinting,
		"print":    ModePrinting,
		"readonly": ModeReadOnly,
		"":         ModeReadOnly,
		"garbage":  ModeReadOnly,
	}
	for raw, want := range tests {
		if got := ParseMode(raw); got != want {
			t.Errorf("ParseMode(%q) = %s, want %s", raw, got, want)
		}
	}
}
