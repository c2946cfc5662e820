package render

import (
	"fmt"
	"strings"
	"testing"

	"DT-EDIT/internal/document"
	"DT-EDIT/internal/signature"
)

func sampleDoc() document.TemplateDocument {
	return document.TemplateDocument{
		Title:    "Mutual Non-Disclosure Agreement",
		Preamble: "This agreement is made on {{effectiveDate}}.",
		PartiesA: "Disclosing Party: {{disclosingPartyName}}",
		PartiesB: "Receiving Party: {{receivingPartyName}}",
		Sections: []document.Section{
			{ID: "sec-1", Title: "Definitions", Content: "Confidential Information means {{definition}}."},
			{ID: "sec-2", Title: "Term", Content: "This agreement lasts {{term}} years."},
		},
	}
}

func TestComposeBrandingFlag(t *testing.T) {
	doc := sampleDoc()

	tests := []struct {
		name     string
		branding interface{}
		wantLogo bool
	}{
		{"boolean false suppresses logo", false, false},
		{"legacy string false suppresses logo", "false", false},
		{"boolean true allows logo", true, true},
		{"string true allows logo", "true", true},
		{"absent flag allows logo", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindings := document.FieldBindings{
				document.KeyLogoURL: "https://example.com/logo.png",
			}
			if tt.branding != nil {
				bindings[document.KeyIncludeBranding] = tt.branding
			}

			html := Compose(ComposeInput{Doc: doc, Bindings: bindings, Mode: ModeReadOnly})
			gotLogo := strings.Contains(html, "doc-logo")
			if gotLogo != tt.wantLogo {
				t.Fatalf("logo rendered = %v, want %v", gotLogo, tt.wantLogo)
			}
		})
	}
}

func TestComposeSectionsInOrderWithStableIDs(t *testing.T) {
	doc := sampleDoc()
	html := Compose(ComposeInput{Doc: doc, Mode: ModeReadOnly})

	first := strings.Index(html, `data-section-id="sec-1"`)
	second := strings.Index(html, `data-section-id="sec-2"`)
	if first == -1 || second == -1 {
		t.Fatalf("expected both section ids in output:\n%s", html)
	}
	if first > second {
		t.Fatalf("sections rendered out of order")
	}
	if !strings.Contains(html, "1. Definitions") || !strings.Contains(html, "2. Term") {
		t.Fatalf("expected numbered section titles:\n%s", html)
	}

	// Reorder and re-render: numbering follows array order, ids follow the
	// sections.
	if err := doc.MoveSection(1, 0); err != nil {
		t.Fatal(err)
	}
	html = Compose(ComposeInput{Doc: doc, Mode: ModeReadOnly})
	if !strings.Contains(html, "1. Term") || !strings.Contains(html, "2. Definitions") {
		t.Fatalf("expected renumbered sections after reorder:\n%s", html)
	}
}

func TestComposeNoSectionsDoesNotPanic(t *testing.T) {
	doc := document.TemplateDocument{Title: "Empty"}
	html := Compose(ComposeInput{Doc: doc, Mode: ModeReadOnly})
	if !strings.Contains(html, "Empty") {
		t.Fatalf("expected title in output:\n%s", html)
	}
}

func TestComposeSignatureBlockLayoutBranches(t *testing.T) {
	doc := sampleDoc()
	bindings := document.FieldBindings{
		document.KeyPartyAName: "Alpha LLC",
		document.KeyPartyBName: "Beta Inc",
	}

	printed := Compose(ComposeInput{Doc: doc, Bindings: bindings, Mode: ModePrinting})
	if !strings.Contains(printed, `<table class="doc-signatures"`) {
		t.Fatalf("print mode must use table markup:\n%s", printed)
	}
	if strings.Contains(printed, "display:flex") {
		t.Fatalf("print mode must not use flex markup:\n%s", printed)
	}

	interactive := Compose(ComposeInput{Doc: doc, Bindings: bindings, Mode: ModeEditable})
	if !strings.Contains(interactive, "display:flex") {
		t.Fatalf("interactive mode must use flex markup:\n%s", interactive)
	}

	// Same signatory data in both branches.
	for _, name := range []string{"Alpha LLC", "Beta Inc"} {
		if !strings.Contains(printed, name) || !strings.Contains(interactive, name) {
			t.Fatalf("signatory %s missing from a branch", name)
		}
	}
}

func TestComposeZoomOnlyOutsidePrint(t *testing.T) {
	doc := sampleDoc()

	editable := Compose(ComposeInput{Doc: doc, Mode: ModeEditable, Zoom: 1.5})
	if !strings.Contains(editable, "transform:scale(1.5)") {
		t.Fatalf("expected zoom transform in editable mode:\n%s", editable)
	}
	if !strings.Contains(editable, "transform-origin:top center") {
		t.Fatalf("expected top-center origin:\n%s", editable)
	}

	printed := Compose(ComposeInput{Doc: doc, Mode: ModePrinting, Zoom: 1.5})
	if strings.Contains(printed, "transform:scale") {
		t.Fatalf("print mode must render unscaled:\n%s", printed)
	}
}

func TestComposeOverlayPositioning(t *testing.T) {
	doc := sampleDoc()
	fields := signature.Set{Fields: []signature.Field{{
		ID:       "field-1",
		Position: signature.Point{X: 100, Y: 240},
		Metadata: signature.Metadata{
			SigneeName: "Jordan",
			Type:       signature.TypeAll,
			Required:   true,
			Order:      1,
			FieldType:  signature.FieldTypeSignature,
		},
	}}}

	t.Run("editable emits raw coordinates inside the scaled container", func(t *testing.T) {
		// The container transform supplies the zoom; emitting a
		// pre-multiplied position here would put the field on screen at
		// x*zoom*zoom.
		html := Compose(ComposeInput{Doc: doc, Fields: fields, Mode: ModeEditable, Zoom: 2})
		if !strings.Contains(html, "transform:scale(2)") {
			t.Fatalf("expected scaled container:\n%s", html)
		}
		if !strings.Contains(html, "left:100px") || !strings.Contains(html, "top:240px") {
			t.Fatalf("expected raw stored overlay position:\n%s", html)
		}
		if !strings.Contains(html, `draggable="true"`) {
			t.Fatalf("expected draggable overlay:\n%s", html)
		}
		if strings.Contains(html, "left:200px") {
			t.Fatalf("overlay position must not be pre-multiplied by zoom:\n%s", html)
		}
	})

	t.Run("editable and read-only overlays agree on position", func(t *testing.T) {
		editable := Compose(ComposeInput{Doc: doc, Fields: fields, Mode: ModeEditable, Zoom: 1.5})
		readonly := Compose(ComposeInput{Doc: doc, Fields: fields, Mode: ModeReadOnly, Zoom: 1.5})
		for _, want := range []string{"left:100px", "top:240px"} {
			if !strings.Contains(editable, want) || !strings.Contains(readonly, want) {
				t.Fatalf("overlay position %s differs between modes at zoom 1.5", want)
			}
		}
	})

	t.Run("print flattens at raw coordinates", func(t *testing.T) {
		html := Compose(ComposeInput{Doc: doc, Fields: fields, Mode: ModePrinting, Zoom: 2})
		if !strings.Contains(html, "left:100px") || !strings.Contains(html, "top:240px") {
			t.Fatalf("expected raw stored coordinates in print output:\n%s", html)
		}
		if strings.Contains(html, "draggable") {
			t.Fatalf("print output must not be draggable:\n%s", html)
		}
	})
}

func TestComposeDefaultStylesFallback(t *testing.T) {
	doc := sampleDoc()
	html := Compose(ComposeInput{Doc: doc, Mode: ModeReadOnly}) // zero Styles
	defaults := document.DefaultStyles()
	if !strings.Contains(html, defaults.FontFamily) {
		t.Fatalf("expected default font family %q:\n%s", defaults.FontFamily, html)
	}
	if !strings.Contains(html, fmt.Sprintf("font-size:%dpx", defaults.FontSize)) {
		t.Fatalf("expected default font size:\n%s", html)
	}
}

func TestExportHTMLWrapsBody(t *testing.T) {
	body := `<div class="doc-canvas">content</div>`
	html := ExportHTML(body, document.Styles{})

	for _, want := range []string{"<!DOCTYPE html>", "@page", "white-space: pre-line", body, "</html>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("export HTML missing %q:\n%s", want, html)
		}
	}
}

func TestComposeForExportIsPrintMode(t *testing.T) {
	doc := sampleDoc()
	bindings := document.FieldBindings{"definition": "trade secrets"}

	html := ComposeForExport(doc, bindings, document.Styles{}, signature.Set{})
	if strings.Contains(html, "field-chip") {
		t.Fatalf("export must not contain editable chips:\n%s", html)
	}
	if !strings.Contains(html, "<strong>trade secrets</strong>") {
		t.Fatalf("export must carry resolved values:\n%s", html)
	}
	if !strings.Contains(html, `<table class="doc-signatures"`) {
		t.Fatalf("export must use the print signature table:\n%s", html)
	}
}
