package services

import (
	"fmt"
	"time"

	"DT-EDIT/internal"
	"DT-EDIT/internal/document"
	"DT-EDIT/internal/models"

	"github.com/google/uuid"
)

type BusinessService struct{}

func NewBusinessService() *BusinessService {
	return &BusinessService{}
}

// GetProfile returns the business profile, one row per deployment.
func (s *BusinessService) GetProfile() (*models.Business, error) {
	var business models.Business
	if err := internal.DB.First(&business).Error; err != nil {
		return nil, fmt.Errorf("business profile not found: %w", err)
	}
	return &business, nil
}

// UpdateProfile upserts the single business profile row.
func (s *BusinessService) UpdateProfile(update models.Business) (*models.Business, error) {
	existing, err := s.GetProfile()
	if err != nil {
		update.ID = uuid.New().String()
		update.CreatedAt = time.Now()
		if err := internal.DB.Create(&update).Error; err != nil {
			return nil, fmt.Errorf("failed to create business profile: %w", err)
		}
		return &update, nil
	}

	update.ID = existing.ID
	update.CreatedAt = existing.CreatedAt
	if err := internal.DB.Save(&update).Error; err != nil {
		return nil, fmt.Errorf("failed to update business profile: %w", err)
	}
	return &update, nil
}

// DefaultBindings seeds a new document's field bindings from the business
// profile.
func (s *BusinessService) DefaultBindings(profile *models.Business) document.FieldBindings {
	bindings := document.FieldBindings{
		"businessName":    profile.Name,
		"businessAddress": profile.Address,
		"businessEmail":   profile.Email,
	}
	if profile.LogoURL != "" {
		bindings[document.KeyLogoURL] = profile.LogoURL
	}
	if profile.TaxID != "" {
		bindings["taxId"] = profile.TaxID
	}
	if profile.TaxRate > 0 {
		bindings["taxRate"] = profile.TaxRate
	}
	return bindings
}
