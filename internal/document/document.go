package document

import (
	"fmt"

	"github.com/google/uuid"
)

// TemplateDocument is the editable body of a document: header template
// strings plus the ordered clause sections. Slice order of Sections is the
// render and print order.
type TemplateDocument struct {
	Title         string    `json:"title"`
	Preamble      string    `json:"preamble"`
	PartiesA      string    `json:"partiesA"`
	PartiesB      string    `json:"partiesB"`
	PartiesFooter string    `json:"partiesFooter"`
	Sections      []Section `json:"sections"`
}

type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewSection creates a section with a fresh id and placeholder text.
func NewSection() Section {
	return Section{
		ID:      uuid.New().String(),
		Title:   "New Section",
		Content: "Enter section content here...",
	}
}

func (d *TemplateDocument) AddSection() Section {
	section := NewSection()
	d.Sections = append(d.Sections, section)
	return section
}

func (d *TemplateDocument) SectionByID(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func (d *TemplateDocument) UpdateSection(id, title, content string) error {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			d.Sections[i].Title = title
			d.Sections[i].Content = content
			return nil
		}
	}
	return fmt.Errorf("section %s not found", id)
}

func (d *TemplateDocument) RemoveSection(id string) error {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("section %s not found", id)
}

// MoveSection splices the section at index from into index to. Sections keep
// their id, title and content; only array position changes.
func (d *TemplateDocument) MoveSection(from, to int) error {
	if from < 0 || from >= len(d.Sections) {
		return fmt.Errorf("move source index %d out of range", from)
	}
	if to < 0 || to >= len(d.Sections) {
		return fmt.Errorf("move target index %d out of range", to)
	}
	if from == to {
		return nil
	}
	section := d.Sections[from]
	d.Sections = append(d.Sections[:from], d.Sections[from+1:]...)
	d.Sections = append(d.Sections[:to], append([]Section{section}, d.Sections[to:]...)...)
	return nil
}
