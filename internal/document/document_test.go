package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func threeSections() TemplateDocument {
	return TemplateDocument{
		Title: "Test",
		Sections: []Section{
			{ID: "a", Title: "Alpha", Content: "alpha content"},
			{ID: "b", Title: "Bravo", Content: "bravo content"},
			{ID: "c", Title: "Charlie", Content: "charlie content"},
		},
	}
}

func sectionIDs(doc TemplateDocument) []string {
	ids := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestMoveSectionReorderStability(t *testing.T) {
	doc := threeSections()

	// [a,b,c] -> [c,a,b]
	if err := doc.MoveSection(2, 0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, sectionIDs(doc)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	// Lookup by id still returns the original content.
	section, ok := doc.SectionByID("b")
	if !ok {
		t.Fatal("section b lost in reorder")
	}
	if section.Title != "Bravo" || section.Content != "bravo content" {
		t.Fatalf("section b mutated by reorder: %+v", section)
	}
}

func TestMoveSectionBounds(t *testing.T) {
	doc := threeSections()

	for _, move := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if err := doc.MoveSection(move[0], move[1]); err == nil {
			t.Errorf("MoveSection(%d, %d): expected out-of-range error", move[0], move[1])
		}
	}

	// Self-move is a no-op.
	if err := doc.MoveSection(1, 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, sectionIDs(doc)); diff != "" {
		t.Fatalf("self move changed order:\n%s", diff)
	}
}

func TestSectionLifecycle(t *testing.T) {
	doc := TemplateDocument{}

	added := doc.AddSection()
	if added.ID == "" {
		t.Fatal("expected generated section id")
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}

	if err := doc.UpdateSection(added.ID, "Scope", "The scope is {{scope}}."); err != nil {
		t.Fatal(err)
	}
	updated, _ := doc.SectionByID(added.ID)
	if updated.Title != "Scope" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := doc.RemoveSection(added.ID); err != nil {
		t.Fatal(err)
	}
	if len(doc.Sections) != 0 {
		t.Fatal("section not removed")
	}
	if err := doc.RemoveSection(added.ID); err == nil {
		t.Fatal("expected error removing missing section")
	}
	if err := doc.UpdateSection("nope", "x", "y"); err == nil {
		t.Fatal("expected error updating missing section")
	}
}

func TestNewSectionsGetDistinctIDs(t *testing.T) {
	doc := TemplateDocument{}
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		s := doc.AddSection()
		if seen[s.ID] {
			t.Fatalf("duplicate section id %s", s.ID)
		}
		seen[s.ID] = true
	}
}
