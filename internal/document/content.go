package document

import (
	"encoding/json"
	"fmt"

	"DT-EDIT/internal/signature"
)

// Content is the full editable payload persisted inside a document record:
// bindings, template body, placed signature fields and the style object.
type Content struct {
	FormData   FieldBindings    `json:"formData"`
	DocContent TemplateDocument `json:"docContent"`
	Signatures signature.Set    `json:"signatures"`
	Styles     Styles           `json:"styles"`
}

// DefaultContent is the payload a brand-new document starts from.
func DefaultContent() Content {
	return Content{
		FormData: FieldBindings{},
		Styles:   DefaultStyles(),
	}
}

// ParseContent decodes a persisted content payload. Payloads are stored as a
// JSON object but legacy rows hold a doubly-encoded JSON string; both are
// accepted. Each portion degrades to its default independently: a document
// missing signatures or styles, or carrying an unparseable portion, still
// loads instead of failing wholesale.
func ParseContent(raw []byte) Content {
	content := DefaultContent()
	if len(raw) == 0 {
		return content
	}

	// Legacy rows store the payload as a JSON-encoded string.
	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		raw = []byte(nested)
	}

	var portions map[string]json.RawMessage
	if err := json.Unmarshal(raw, &portions); err != nil {
		fmt.Printf("Warning: malformed document content, using defaults: %v\n", err)
		return content
	}

	if part, ok := portions["formData"]; ok {
		var formData FieldBindings
		if err := json.Unmarshal(part, &formData); err != nil {
			fmt.Printf("Warning: malformed formData portion: %v\n", err)
		} else if formData != nil {
			content.FormData = formData
		}
	}
	if part, ok := portions["docContent"]; ok {
		var doc TemplateDocument
		if err := json.Unmarshal(part, &doc); err != nil {
			fmt.Printf("Warning: malformed docContent portion: %v\n", err)
		} else {
			content.DocContent = doc
		}
	}
	if part, ok := portions["signatures"]; ok {
		var signatures signature.Set
		if err := json.Unmarshal(part, &signatures); err != nil {
			fmt.Printf("Warning: malformed signatures portion: %v\n", err)
		} else {
			content.Signatures = signatures
		}
	}
	if part, ok := portions["styles"]; ok {
		var styles Styles
		if err := json.Unmarshal(part, &styles); err != nil {
			fmt.Printf("Warning: malformed styles portion: %v\n", err)
		} else {
			content.Styles = styles.Normalize()
		}
	}

	return content
}

// Encode serializes the payload for storage.
func (c Content) Encode() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document content: %w", err)
	}
	return string(data), nil
}
