package services

import (
	"fmt"

	"DT-EDIT/internal"
	"DT-EDIT/internal/models"

	"github.com/google/uuid"
)

type VersionService struct{}

func NewVersionService() *VersionService {
	return &VersionService{}
}

// Snapshot records the document's current content as a new version.
func (s *VersionService) Snapshot(doc *models.Document, label string) error {
	version := &models.DocumentVersion{
		ID:         uuid.New().String(),
		DocumentID: doc.ID,
		Content:    doc.Content,
		Label:      label,
	}
	if err := internal.DB.Create(version).Error; err != nil {
		return fmt.Errorf("failed to create version snapshot: %w", err)
	}
	return nil
}

func (s *VersionService) ListVersions(documentID string) ([]models.DocumentVersion, error) {
	var versions []models.DocumentVersion
	if err := internal.DB.Where("document_id = ?", documentID).
		Order("created_at DESC").Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

func (s *VersionService) GetVersion(documentID, versionID string) (*models.DocumentVersion, error) {
	var version models.DocumentVersion
	if err := internal.DB.First(&version, "id = ? AND document_id = ?", versionID, documentID).Error; err != nil {
		return nil, fmt.Errorf("version not found: %w", err)
	}
	return &version, nil
}

// Restore applies an old version's content to the document. The pre-restore
// state is snapshotted first, so restore never destroys history.
func (s *VersionService) Restore(documentID, versionID string) (*models.Document, error) {
	var doc models.Document
	if err := internal.DB.First(&doc, "id = ?", documentID).Error; err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}

	version, err := s.GetVersion(documentID, versionID)
	if err != nil {
		return nil, err
	}

	if err := s.Snapshot(&doc, "pre-restore"); err != nil {
		return nil, err
	}

	doc.Content = version.Content
	if err := internal.DB.Save(&doc).Error; err != nil {
		return nil, fmt.Errorf("failed to apply restored content: %w", err)
	}

	return &doc, nil
}
