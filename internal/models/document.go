package models

import (
	"time"

	"gorm.io/gorm"
)

// Allowed document kinds.
const (
	KindNDA                 = "nda"
	KindInvoice             = "invoice"
	KindOfferLetter         = "offer_letter"
	KindProposal            = "proposal"
	KindConsultingAgreement = "consulting_agreement"
)

func IsAllowedDocumentKind(kind string) bool {
	switch kind {
	case KindNDA, KindInvoice, KindOfferLetter, KindProposal, KindConsultingAgreement:
		return true
	default:
		return false
	}
}

// Document is one persisted editor document. Content is the opaque JSON
// payload holding formData, docContent, signatures and styles.
type Document struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	Kind      string         `gorm:"not null" json:"kind"`
	Content   string         `gorm:"type:json" json:"content"`
	Status    string         `gorm:"default:'draft'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Versions []DocumentVersion `gorm:"foreignKey:DocumentID" json:"versions,omitempty"`
}

// DocumentVersion is one linear history snapshot of a document's content.
type DocumentVersion struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	DocumentID string    `gorm:"not null;index" json:"document_id"`
	Content    string    `gorm:"type:json" json:"content"`
	Label      string    `json:"label"`
	CreatedAt  time.Time `json:"created_at"`
}

// Business is the single business profile used to pre-fill binding defaults
// on new-document creation.
type Business struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	LogoURL   string    `json:"logo"`
	TaxID     string    `json:"tax_id"`
	TaxRate   float64   `json:"tax_rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
