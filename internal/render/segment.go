package render

import (
	"regexp"
	"strings"

	"DT-EDIT/internal/document"
)

type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentVariable
)

// Segment is one parsed piece of a template string: either literal text or a
// {{name}} token resolved against the bindings. Value is nil when the name
// has no binding; that is the explicit "missing" state, never an error.
type Segment struct {
	Kind  SegmentKind
	Text  string  // literal text, verbatim including newlines
	Name  string  // variable name with delimiters and whitespace stripped
	Value *string // resolved value; nil when unbound
}

var tokenPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ParseTemplate splits a template string on {{name}} tokens and resolves
// each token against the bindings. Literal spans between tokens are
// preserved byte-for-byte, so concatenating the segments (tokens rendered as
// {{name}}) reproduces the input. An empty template yields no segments.
func ParseTemplate(template string, bindings document.FieldBindings) []Segment {
	if template == "" {
		return nil
	}

	var segments []Segment
	last := 0
	for _, match := range tokenPattern.FindAllStringSubmatchIndex(template, -1) {
		start, end := match[0], match[1]
		if start > last {
			segments = append(segments, Segment{
				Kind: SegmentLiteral,
				Text: template[last:start],
			})
		}
		name := strings.TrimSpace(template[match[2]:match[3]])
		segment := Segment{Kind: SegmentVariable, Name: name}
		if value, ok := bindings.Lookup(name); ok {
			segment.Value = &value
		}
		segments = append(segments, segment)
		last = end
	}
	if last < len(template) {
		segments = append(segments, Segment{
			Kind: SegmentLiteral,
			Text: template[last:],
		})
	}

	return segments
}
