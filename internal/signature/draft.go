package signature

import "fmt"

// Draft is the uncommitted configuration step opened when a toolbar item is
// dropped on the canvas or an existing field is edited. Discarding a draft
// never touches the committed set.
type Draft struct {
	fieldID  string // empty while the field has not been placed yet
	Position Point
	Metadata Metadata
}

// NewDraft starts the configuration step for a fresh drop at the given
// document-space point.
func NewDraft(position Point) *Draft {
	return &Draft{
		Position: position,
		Metadata: Metadata{
			Type:      TypeAll,
			Required:  true,
			Order:     1,
			FieldType: FieldTypeSignature,
		},
	}
}

// EditDraft starts the configuration step pre-populated from an existing
// field.
func EditDraft(field Field) *Draft {
	return &Draft{
		fieldID:  field.ID,
		Position: field.Position,
		Metadata: field.Metadata,
	}
}

// ApplyPreset overwrites the signee identity from a canonical party role.
// Presets only run when explicitly invoked, so a signee the user already
// customized survives until the preset button is pressed.
func (d *Draft) ApplyPreset(name, email string) {
	if name != "" {
		d.Metadata.SigneeName = name
	}
	if email != "" {
		d.Metadata.SigneeEmail = email
	}
}

// Commit places a new field or, for an edit draft, merges the metadata back
// into the existing field without touching its position.
func (d *Draft) Commit(set *Set) (Field, error) {
	if d.fieldID == "" {
		return set.Place(d.Position, d.Metadata)
	}
	if err := set.UpdateMetadata(d.fieldID, d.Metadata); err != nil {
		return Field{}, err
	}
	field, ok := set.ByID(d.fieldID)
	if !ok {
		return Field{}, fmt.Errorf("signature field %s disappeared during edit", d.fieldID)
	}
	return field, nil
}
