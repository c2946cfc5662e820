package services

import (
	"errors"
	"testing"
)

func TestSaveGuardOnePerDocument(t *testing.T) {
	service := NewDocumentService(nil, nil)

	if err := service.beginSave("doc-1"); err != nil {
		t.Fatalf("first save should acquire the lock: %v", err)
	}

	// Second save for the same id is rejected while the first runs.
	if err := service.beginSave("doc-1"); !errors.Is(err, ErrSaveInFlight) {
		t.Fatalf("concurrent save for same id: got %v, want ErrSaveInFlight", err)
	}

	// A different document saves independently.
	if err := service.beginSave("doc-2"); err != nil {
		t.Fatalf("save for a different id should proceed: %v", err)
	}
	service.endSave("doc-2")

	// Releasing the lock lets the next save through.
	service.endSave("doc-1")
	if err := service.beginSave("doc-1"); err != nil {
		t.Fatalf("save after release should acquire the lock: %v", err)
	}
	service.endSave("doc-1")
}

func TestSaveGuardReleaseIsIdempotent(t *testing.T) {
	service := NewDocumentService(nil, nil)

	service.endSave("never-locked")

	if err := service.beginSave("doc-1"); err != nil {
		t.Fatal(err)
	}
	service.endSave("doc-1")
	service.endSave("doc-1")
	if err := service.beginSave("doc-1"); err != nil {
		t.Fatalf("lock state corrupted by double release: %v", err)
	}
}
