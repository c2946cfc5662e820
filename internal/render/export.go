package render

import (
	"fmt"
	"strings"

	"DT-EDIT/internal/document"
	"DT-EDIT/internal/signature"
)

// ExportHTML wraps print-mode composer output in a complete standalone HTML
// document with the export CSS embedded, ready for the PDF engine.
func ExportHTML(body string, styles document.Styles) string {
	styles = styles.Normalize()
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString(fmt.Sprintf(`@page { margin: %dpx; }
body { margin: 0; font-family: %s; font-size: %dpx; line-height: %g; color: %s; }
p, .doc-section p { white-space: pre-line; }
h1, h2 { color: %s; }
table { border-collapse: collapse; }
.doc-section { page-break-inside: avoid; }
`, styles.PageMargin, styles.FontFamily, styles.FontSize, styles.LineHeight, styles.TextColor, styles.HeadingColor))
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// ComposeForExport runs the composer once more in print mode at 100% and
// wraps the result for the PDF pipeline.
func ComposeForExport(doc document.TemplateDocument, bindings document.FieldBindings, styles document.Styles, fields signature.Set) string {
	body := Compose(ComposeInput{
		Doc:      doc,
		Bindings: bindings,
		Styles:   styles,
		Fields:   fields,
		Mode:     ModePrinting,
		Zoom:     1,
	})
	return ExportHTML(body, styles)
}
