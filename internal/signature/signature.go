package signature

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Allowed signature capture types.
const (
	TypeAll    = "all"
	TypeDraw   = "draw"
	TypeText   = "text"
	TypeUpload = "upload"
)

// Field kinds placed on the canvas.
const (
	FieldTypeSignature = "signature"
	FieldTypeText      = "text"
)

// Point is a position in unscaled document pixels, anchored to the top-left
// of the document canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Metadata carries everything about a placed field except its position.
type Metadata struct {
	SigneeName  string `json:"signeeName"`
	SigneeEmail string `json:"signeeEmail"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Order       int    `json:"order"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	FieldType   string `json:"fieldType"`
}

// Field is one placed signature (or text) field.
type Field struct {
	ID       string   `json:"id"`
	Position Point    `json:"position"`
	Metadata Metadata `json:"metadata"`
}

func validateMetadata(meta Metadata) error {
	switch meta.Type {
	case TypeAll, TypeDraw, TypeText, TypeUpload:
	default:
		return fmt.Errorf("invalid signature type %q", meta.Type)
	}
	switch meta.FieldType {
	case FieldTypeSignature, FieldTypeText:
	default:
		return fmt.Errorf("invalid field type %q", meta.FieldType)
	}
	if meta.Order < 1 {
		return fmt.Errorf("order must be >= 1, got %d", meta.Order)
	}
	return nil
}

// Set is the committed collection of signature fields for one document.
// Fields keep their insertion order; display numbering comes from
// Metadata.Order, which is advisory only.
type Set struct {
	Fields []Field `json:"fields"`
}

// Place commits a new field at the given document-space point.
func (s *Set) Place(position Point, meta Metadata) (Field, error) {
	if err := validateMetadata(meta); err != nil {
		return Field{}, err
	}
	field := Field{
		ID:       uuid.New().String(),
		Position: position,
		Metadata: meta,
	}
	s.Fields = append(s.Fields, field)
	return field, nil
}

// Move replaces the position of an existing field, leaving metadata alone.
func (s *Set) Move(id string, position Point) error {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			s.Fields[i].Position = position
			return nil
		}
	}
	return fmt.Errorf("signature field %s not found", id)
}

// UpdateMetadata replaces the metadata of an existing field, leaving its
// position alone.
func (s *Set) UpdateMetadata(id string, meta Metadata) error {
	if err := validateMetadata(meta); err != nil {
		return err
	}
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			s.Fields[i].Metadata = meta
			return nil
		}
	}
	return fmt.Errorf("signature field %s not found", id)
}

// Remove deletes a field by id.
func (s *Set) Remove(id string) error {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			s.Fields = append(s.Fields[:i], s.Fields[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("signature field %s not found", id)
}

func (s *Set) ByID(id string) (Field, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// MarshalJSON stores the set as a bare field array.
func (s Set) MarshalJSON() ([]byte, error) {
	if s.Fields == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Fields)
}

// UnmarshalJSON accepts both the bare array shape and the legacy
// {"fields": [...]} wrapper.
func (s *Set) UnmarshalJSON(data []byte) error {
	var fields []Field
	if err := json.Unmarshal(data, &fields); err == nil {
		s.Fields = fields
		return nil
	}
	var wrapped struct {
		Fields []Field `json:"fields"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	s.Fields = wrapped.Fields
	return nil
}
