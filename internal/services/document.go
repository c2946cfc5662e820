package services

import (
	"errors"
	"fmt"
	"sync"

	"DT-EDIT/internal"
	"DT-EDIT/internal/document"
	"DT-EDIT/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSaveInFlight is returned when a second save for the same document
// arrives while one is still running. The caller retries after the first
// save settles; stored state is untouched.
var ErrSaveInFlight = errors.New("a save for this document is already in flight")

// DuplicateNameError is the distinguished name-collision condition. It
// carries a suggested free alternative so the caller can recover.
type DuplicateNameError struct {
	Name      string
	Suggested string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("document name %q already exists (suggested: %q)", e.Name, e.Suggested)
}

type DocumentService struct {
	businessService *BusinessService
	versionService  *VersionService

	mu     sync.Mutex
	saving map[string]bool // at-most-one in-flight save per document id
}

func NewDocumentService(businessService *BusinessService, versionService *VersionService) *DocumentService {
	return &DocumentService{
		businessService: businessService,
		versionService:  versionService,
		saving:          make(map[string]bool),
	}
}

// beginSave marks a document as having a save in flight.
func (s *DocumentService) beginSave(documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving[documentID] {
		return ErrSaveInFlight
	}
	s.saving[documentID] = true
	return nil
}

func (s *DocumentService) endSave(documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saving, documentID)
}

// CreateDocument creates a new document with binding defaults pre-filled
// from the business profile.
func (s *DocumentService) CreateDocument(name, kind string) (*models.Document, error) {
	if !models.IsAllowedDocumentKind(kind) {
		return nil, fmt.Errorf("unsupported document kind %q", kind)
	}

	if taken, err := s.nameTaken(name, ""); err != nil {
		return nil, err
	} else if taken {
		suggested, err := s.suggestName(name)
		if err != nil {
			return nil, err
		}
		return nil, &DuplicateNameError{Name: name, Suggested: suggested}
	}

	content := document.DefaultContent()
	if profile, err := s.businessService.GetProfile(); err == nil {
		content.FormData = s.businessService.DefaultBindings(profile)
	} else {
		fmt.Printf("Warning: no business profile, creating document without defaults: %v\n", err)
	}

	encoded, err := content.Encode()
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		ID:      uuid.New().String(),
		Name:    name,
		Kind:    kind,
		Content: encoded,
		Status:  "draft",
	}

	if err := internal.DB.Create(doc).Error; err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return doc, nil
}

func (s *DocumentService) GetDocument(documentID string) (*models.Document, error) {
	var doc models.Document
	if err := internal.DB.First(&doc, "id = ?", documentID).Error; err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}
	return &doc, nil
}

func (s *DocumentService) ListDocuments() ([]models.Document, error) {
	var docs []models.Document
	if err := internal.DB.Order("updated_at DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// GetContent loads a document and decodes its payload, degrading malformed
// portions to defaults.
func (s *DocumentService) GetContent(documentID string) (*models.Document, document.Content, error) {
	doc, err := s.GetDocument(documentID)
	if err != nil {
		return nil, document.Content{}, err
	}
	return doc, document.ParseContent([]byte(doc.Content)), nil
}

// UpdateDocument saves a new content payload. The previous content is
// snapshotted as a version first; a failed save leaves the stored document
// exactly as it was.
func (s *DocumentService) UpdateDocument(documentID, name string, content document.Content) (*models.Document, error) {
	if err := s.beginSave(documentID); err != nil {
		return nil, err
	}
	defer s.endSave(documentID)

	doc, err := s.GetDocument(documentID)
	if err != nil {
		return nil, err
	}

	if name != "" && name != doc.Name {
		if taken, err := s.nameTaken(name, documentID); err != nil {
			return nil, err
		} else if taken {
			suggested, err := s.suggestName(name)
			if err != nil {
				return nil, err
			}
			return nil, &DuplicateNameError{Name: name, Suggested: suggested}
		}
		doc.Name = name
	}

	encoded, err := content.Encode()
	if err != nil {
		return nil, err
	}

	if err := s.versionService.Snapshot(doc, "pre-save"); err != nil {
		fmt.Printf("Warning: failed to snapshot document %s: %v\n", documentID, err)
	}

	doc.Content = encoded
	if err := internal.DB.Save(doc).Error; err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	return doc, nil
}

func (s *DocumentService) DeleteDocument(documentID string) error {
	doc, err := s.GetDocument(documentID)
	if err != nil {
		return err
	}
	// Soft delete
	return internal.DB.Delete(doc).Error
}

func (s *DocumentService) nameTaken(name, excludeID string) (bool, error) {
	var count int64
	query := internal.DB.Model(&models.Document{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check document name: %w", err)
	}
	return count > 0, nil
}

// suggestName finds the first free "Name (n)" variant.
func (s *DocumentService) suggestName(name string) (string, error) {
	for n := 2; n < 100; n++ {
		candidate := fmt.Sprintf("%s (%d)", name, n)
		taken, err := s.nameTaken(candidate, "")
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return fmt.Sprintf("%s (%s)", name, uuid.New().String()[:8]), nil
}

// IsNotFound reports whether err is the gorm record-not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
