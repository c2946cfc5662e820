package document

import (
	"encoding/json"
	"testing"

	"DT-EDIT/internal/signature"
)

func TestParseContentObject(t *testing.T) {
	raw := `{
		"formData": {"clientName": "Acme Corp", "rate": 150},
		"docContent": {"title": "Consulting Agreement", "sections": [{"id": "s1", "title": "Scope", "content": "work"}]},
		"signatures": [{"id": "f1", "position": {"x": 10, "y": 20}, "metadata": {"type": "all", "required": true, "order": 1, "fieldType": "signature"}}],
		"styles": {"fontSize": 16}
	}`

	content := ParseContent([]byte(raw))

	if got := content.FormData.GetString("clientName"); got != "Acme Corp" {
		t.Errorf("clientName = %q", got)
	}
	if got := content.FormData.GetString("rate"); got != "150" {
		t.Errorf("rate = %q, want integer formatting", got)
	}
	if content.DocContent.Title != "Consulting Agreement" || len(content.DocContent.Sections) != 1 {
		t.Errorf("docContent not decoded: %+v", content.DocContent)
	}
	if len(content.Signatures.Fields) != 1 || content.Signatures.Fields[0].ID != "f1" {
		t.Errorf("signatures not decoded: %+v", content.Signatures)
	}
	if content.Styles.FontSize != 16 {
		t.Errorf("fontSize = %v", content.Styles.FontSize)
	}
	// Normalize fills portions the styles object omitted.
	if content.Styles.FontFamily == "" {
		t.Error("styles not normalized")
	}
}

func TestParseContentDoublyEncoded(t *testing.T) {
	inner := `{"formData":{"clientName":"Acme"},"docContent":{"title":"NDA"}}`
	wrapped, err := json.Marshal(inner)
	if err != nil {
		t.Fatal(err)
	}

	content := ParseContent(wrapped)
	if content.DocContent.Title != "NDA" {
		t.Fatalf("legacy string-encoded payload not decoded: %+v", content.DocContent)
	}
	if got := content.FormData.GetString("clientName"); got != "Acme" {
		t.Errorf("clientName = %q", got)
	}
}

func TestParseContentDegradesPerPortion(t *testing.T) {
	// formData is malformed; the rest of the payload must still load.
	raw := `{"formData": 17, "docContent": {"title": "Kept"}, "styles": "broken"}`

	content := ParseContent([]byte(raw))
	if content.DocContent.Title != "Kept" {
		t.Fatal("valid portion discarded alongside malformed one")
	}
	if len(content.FormData) != 0 {
		t.Errorf("malformed formData should fall back to defaults, got %+v", content.FormData)
	}
	if content.Styles != DefaultStyles() {
		t.Errorf("malformed styles should fall back to defaults, got %+v", content.Styles)
	}
}

func TestParseContentEmptyAndMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json", "[1,2,3]"} {
		content := ParseContent([]byte(raw))
		if content.Styles != DefaultStyles() {
			t.Errorf("ParseContent(%q): expected default styles", raw)
		}
		if content.FormData == nil {
			t.Errorf("ParseContent(%q): expected empty (non-nil) bindings", raw)
		}
	}
}

func TestContentRoundTrip(t *testing.T) {
	content := DefaultContent()
	content.FormData["clientName"] = "Acme"
	content.DocContent.Title = "Proposal"
	content.DocContent.AddSection()
	if _, err := content.Signatures.Place(
		signature.Point{X: 5, Y: 6},
		signature.Metadata{Type: signature.TypeAll, Required: true, Order: 1, FieldType: signature.FieldTypeSignature},
	); err != nil {
		t.Fatal(err)
	}

	encoded, err := content.Encode()
	if err != nil {
		t.Fatal(err)
	}

	decoded := ParseContent([]byte(encoded))
	if decoded.DocContent.Title != "Proposal" {
		t.Errorf("title lost in round trip")
	}
	if len(decoded.DocContent.Sections) != 1 {
		t.Errorf("sections lost in round trip")
	}
	if len(decoded.Signatures.Fields) != 1 {
		t.Errorf("signatures lost in round trip")
	}
	if got := decoded.FormData.GetString("clientName"); got != "Acme" {
		t.Errorf("clientName = %q after round trip", got)
	}
}

func TestEncodeEmptySignaturesAsArray(t *testing.T) {
	encoded, err := DefaultContent().Encode()
	if err != nil {
		t.Fatal(err)
	}
	var portions map[string]json.RawMessage
	if err := json.Unmarshal([]byte(encoded), &portions); err != nil {
		t.Fatal(err)
	}
	if string(portions["signatures"]) != "[]" {
		t.Errorf("signatures portion = %s, want bare empty array", portions["signatures"])
	}
}
