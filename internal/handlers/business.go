package handlers

import (
	"net/http"

	"DT-EDIT/internal/models"
	"DT-EDIT/internal/services"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	businessService *services.BusinessService
}

func NewBusinessHandler(businessService *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
	}
}

// GetProfile returns the business profile used to pre-fill new documents.
func (h *BusinessHandler) GetProfile(c *gin.Context) {
	profile, err := h.businessService.GetProfile()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business profile not configured"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *BusinessHandler) UpdateProfile(c *gin.Context) {
	var req models.Business
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	profile, err := h.businessService.UpdateProfile(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
