package handlers

import (
	"net/http"

	"DT-EDIT/internal/services"

	"github.com/gin-gonic/gin"
)

type VersionsHandler struct {
	versionService *services.VersionService
}

func NewVersionsHandler(versionService *services.VersionService) *VersionsHandler {
	return &VersionsHandler{
		versionService: versionService,
	}
}

func (h *VersionsHandler) ListVersions(c *gin.Context) {
	documentID := c.Param("documentId")

	versions, err := h.versionService.ListVersions(documentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list versions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

// RestoreVersion applies an old version to the document. A snapshot of the
// pre-restore state is taken first, so history stays linear and complete.
func (h *VersionsHandler) RestoreVersion(c *gin.Context) {
	documentID := c.Param("documentId")
	versionID := c.Param("versionId")

	doc, err := h.versionService.Restore(documentID, versionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document or version not found"})
		return
	}

	c.JSON(http.StatusOK, doc)
}
