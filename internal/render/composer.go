package render

import (
	"fmt"
	"html"
	"strings"

	"DT-EDIT/internal/document"
	"DT-EDIT/internal/signature"
)

// ComposeInput carries everything the composer needs for one render pass.
// Zoom only applies outside print mode; export always renders at 100%.
type ComposeInput struct {
	Doc      document.TemplateDocument
	Bindings document.FieldBindings
	Styles   document.Styles
	Fields   signature.Set
	Mode     Mode
	Zoom     float64
}

// Compose assembles the full document view: branding header, preamble,
// parties block, ordered clause sections, signatures block and the
// signature overlay layer. Print mode emits table-based markup for the
// signatures block because HTML-to-PDF engines handle tables far more
// reliably than flex or grid.
func Compose(in ComposeInput) string {
	styles := in.Styles.Normalize()
	zoom := in.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	var b strings.Builder

	containerStyle := fmt.Sprintf(
		"position:relative;font-family:%s;font-size:%dpx;line-height:%g;color:%s;padding:%dpx;background:#ffffff;",
		styles.FontFamily, styles.FontSize, styles.LineHeight, styles.TextColor, styles.PageMargin,
	)
	if in.Mode != ModePrinting && zoom != 1 {
		containerStyle += fmt.Sprintf("transform:scale(%g);transform-origin:top center;", zoom)
	}
	b.WriteString(fmt.Sprintf(`<div class="doc-canvas" style="%s">`, containerStyle))

	composeHeader(&b, in.Bindings, styles, in.Doc.Title)

	if in.Doc.Preamble != "" {
		b.WriteString(`<p class="doc-preamble">`)
		b.WriteString(RenderTemplate(in.Doc.Preamble, in.Bindings, in.Mode))
		b.WriteString(`</p>`)
	}

	composeParties(&b, in)
	composeSections(&b, in)
	composeSignatureBlock(&b, in)
	composeOverlay(&b, in)

	b.WriteString(`</div>`)
	return b.String()
}

func composeHeader(b *strings.Builder, bindings document.FieldBindings, styles document.Styles, title string) {
	if bindings.BrandingEnabled() {
		if logoURL := bindings.GetString(document.KeyLogoURL); logoURL != "" {
			b.WriteString(fmt.Sprintf(
				`<div class="doc-logo" style="text-align:%s;"><img src="%s" alt="logo" style="height:%dpx;"></div>`,
				bindings.LogoAlignment(), html.EscapeString(logoURL), bindings.LogoHeight(),
			))
		}
	}
	if title != "" {
		b.WriteString(fmt.Sprintf(
			`<h1 class="doc-title" style="color:%s;text-align:center;">%s</h1>`,
			styles.HeadingColor, html.EscapeString(title),
		))
	}
}

func composeParties(b *strings.Builder, in ComposeInput) {
	if in.Doc.PartiesA == "" && in.Doc.PartiesB == "" && in.Doc.PartiesFooter == "" {
		return
	}
	b.WriteString(`<div class="doc-parties">`)
	if in.Doc.PartiesA != "" {
		b.WriteString(`<p class="doc-party">`)
		b.WriteString(RenderTemplate(in.Doc.PartiesA, in.Bindings, in.Mode))
		b.WriteString(`</p>`)
	}
	if in.Doc.PartiesB != "" {
		b.WriteString(`<p class="doc-party">`)
		b.WriteString(RenderTemplate(in.Doc.PartiesB, in.Bindings, in.Mode))
		b.WriteString(`</p>`)
	}
	if in.Doc.PartiesFooter != "" {
		b.WriteString(`<p class="doc-party-footer">`)
		b.WriteString(RenderTemplate(in.Doc.PartiesFooter, in.Bindings, in.Mode))
		b.WriteString(`</p>`)
	}
	b.WriteString(`</div>`)
}

func composeSections(b *strings.Builder, in ComposeInput) {
	// A document without sections renders an empty body, never panics.
	for i, section := range in.Doc.Sections {
		b.WriteString(fmt.Sprintf(`<section class="doc-section" data-section-id="%s">`, html.EscapeString(section.ID)))
		b.WriteString(fmt.Sprintf(
			`<h2 style="color:%s;">%d. %s</h2>`,
			in.Styles.Normalize().HeadingColor, i+1, html.EscapeString(section.Title),
		))
		b.WriteString(`<p>`)
		b.WriteString(RenderTemplate(section.Content, in.Bindings, in.Mode))
		b.WriteString(`</p>`)
		b.WriteString(`</section>`)
	}
}

// composeSignatureBlock renders the fixed two-column signatory block. The
// layout branches hard on print mode; both branches carry the same
// signatory data.
func composeSignatureBlock(b *strings.Builder, in ComposeInput) {
	left := signatoryCell(in.Bindings, document.KeyPartyAName, document.KeyClientName)
	right := signatoryCell(in.Bindings, document.KeyPartyBName, document.KeyConsultantName)

	if in.Mode == ModePrinting {
		b.WriteString(`<table class="doc-signatures" style="width:100%;border-collapse:collapse;margin-top:48px;"><tr>`)
		b.WriteString(`<td style="width:50%;vertical-align:bottom;padding-right:24px;">` + left + `</td>`)
		b.WriteString(`<td style="width:50%;vertical-align:bottom;padding-left:24px;">` + right + `</td>`)
		b.WriteString(`</tr></table>`)
		return
	}

	b.WriteString(`<div class="doc-signatures" style="display:flex;gap:48px;margin-top:48px;">`)
	b.WriteString(`<div style="flex:1;">` + left + `</div>`)
	b.WriteString(`<div style="flex:1;">` + right + `</div>`)
	b.WriteString(`</div>`)
}

func signatoryCell(bindings document.FieldBindings, keys ...string) string {
	name := ""
	for _, key := range keys {
		if value := bindings.GetString(key); value != "" {
			name = value
			break
		}
	}
	cell := `<div style="border-top:1px solid #000;padding-top:8px;">`
	if name != "" {
		cell += `<strong>` + html.EscapeString(name) + `</strong><br>`
	}
	cell += `Signature / Date</div>`
	return cell
}

// composeOverlay renders the placed signature fields. All modes emit the
// raw stored document-space coordinates: the container transform already
// scales the whole canvas, so an overlay that pre-multiplied by zoom would
// land at zoom squared. ScreenRect is for callers positioning outside the
// transformed container.
func composeOverlay(b *strings.Builder, in ComposeInput) {
	if len(in.Fields.Fields) == 0 {
		return
	}

	for _, field := range in.Fields.Fields {
		label := field.Metadata.Label
		if label == "" {
			label = fmt.Sprintf("Signature %d", field.Metadata.Order)
			if field.Metadata.FieldType == signature.FieldTypeText {
				label = fmt.Sprintf("Text %d", field.Metadata.Order)
			}
		}

		if in.Mode == ModeEditable {
			b.WriteString(fmt.Sprintf(
				`<div class="sig-field" draggable="true" data-field-id="%s" style="position:absolute;left:%gpx;top:%gpx;border:2px dashed #3b82f6;background:rgba(59,130,246,0.08);padding:4px 10px;cursor:move;">%s<br><small>%s</small></div>`,
				html.EscapeString(field.ID), field.Position.X, field.Position.Y,
				html.EscapeString(label), html.EscapeString(field.Metadata.SigneeName),
			))
			continue
		}

		b.WriteString(fmt.Sprintf(
			`<div class="sig-field-static" data-field-id="%s" style="position:absolute;left:%gpx;top:%gpx;">%s<br><small>%s</small></div>`,
			html.EscapeString(field.ID), field.Position.X, field.Position.Y,
			html.EscapeString(label), html.EscapeString(field.Metadata.SigneeName),
		))
	}
}
