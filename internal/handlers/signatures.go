package handlers

import (
	"net/http"

	"DT-EDIT/internal/document"
	"DT-EDIT/internal/services"
	"DT-EDIT/internal/signature"

	"github.com/gin-gonic/gin"
)

type SignaturesHandler struct {
	documentService *services.DocumentService
}

func NewSignaturesHandler(documentService *services.DocumentService) *SignaturesHandler {
	return &SignaturesHandler{
		documentService: documentService,
	}
}

// DropPoint is the raw drag-end geometry reported by the editor: absolute
// pointer position, canvas offset and the zoom in effect at drop time.
type DropPoint struct {
	PointerX   float64 `json:"pointer_x"`
	PointerY   float64 `json:"pointer_y"`
	CanvasLeft float64 `json:"canvas_left"`
	CanvasTop  float64 `json:"canvas_top"`
	Zoom       float64 `json:"zoom"`
}

func (p DropPoint) resolve() (signature.Point, error) {
	zoom := p.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return signature.CanvasPoint(p.PointerX, p.PointerY, p.CanvasLeft, p.CanvasTop, zoom)
}

type PlaceFieldRequest struct {
	Drop     DropPoint          `json:"drop"`
	Metadata signature.Metadata `json:"metadata"`
	// Preset is "partyA" or "partyB"; when set, the signee identity is
	// pre-filled from the document's party bindings.
	Preset string `json:"preset"`
}

type MoveFieldRequest struct {
	Drop DropPoint `json:"drop"`
}

type UpdateFieldRequest struct {
	Metadata signature.Metadata `json:"metadata"`
	Preset   string             `json:"preset"`
}

func applyPreset(draft *signature.Draft, preset string, bindings document.FieldBindings) {
	switch preset {
	case "partyA":
		name := bindings.GetString(document.KeyPartyAName)
		if name == "" {
			name = bindings.GetString(document.KeyClientName)
		}
		draft.ApplyPreset(name, "")
	case "partyB":
		name := bindings.GetString(document.KeyPartyBName)
		if name == "" {
			name = bindings.GetString(document.KeyConsultantName)
		}
		draft.ApplyPreset(name, "")
	}
}

// PlaceField commits a toolbar drop: pointer coordinates are normalized to
// zoom-independent document space, then the configured field is added to
// the document's signature set.
func (h *SignaturesHandler) PlaceField(c *gin.Context) {
	documentID := c.Param("documentId")

	_, content, err := h.documentService.GetContent(documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var req PlaceFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	position, err := req.Drop.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := signature.NewDraft(position)
	if req.Metadata.Type != "" {
		draft.Metadata = req.Metadata
	}
	applyPreset(draft, req.Preset, content.FormData)

	field, err := draft.Commit(&content.Signatures)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.documentService.UpdateDocument(documentID, "", content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save signature field"})
		return
	}

	c.JSON(http.StatusCreated, field)
}

// MoveField re-normalizes the drag-end coordinates and replaces only the
// field's position; metadata stays untouched.
func (h *SignaturesHandler) MoveField(c *gin.Context) {
	documentID := c.Param("documentId")
	fieldID := c.Param("fieldId")

	_, content, err := h.documentService.GetContent(documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var req MoveFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	position, err := req.Drop.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := content.Signatures.Move(fieldID, position); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signature field not found"})
		return
	}

	if _, err := h.documentService.UpdateDocument(documentID, "", content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save signature field"})
		return
	}

	field, _ := content.Signatures.ByID(fieldID)
	c.JSON(http.StatusOK, field)
}

// UpdateField opens an edit draft pre-populated from the existing field and
// merges the new metadata in; the stored position stays untouched.
func (h *SignaturesHandler) UpdateField(c *gin.Context) {
	documentID := c.Param("documentId")
	fieldID := c.Param("fieldId")

	_, content, err := h.documentService.GetContent(documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	existing, ok := content.Signatures.ByID(fieldID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signature field not found"})
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	draft := signature.EditDraft(existing)
	draft.Metadata = req.Metadata
	applyPreset(draft, req.Preset, content.FormData)

	field, err := draft.Commit(&content.Signatures)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.documentService.UpdateDocument(documentID, "", content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save signature field"})
		return
	}

	c.JSON(http.StatusOK, field)
}

func (h *SignaturesHandler) RemoveField(c *gin.Context) {
	documentID := c.Param("documentId")
	fieldID := c.Param("fieldId")

	_, content, err := h.documentService.GetContent(documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if err := content.Signatures.Remove(fieldID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signature field not found"})
		return
	}

	if _, err := h.documentService.UpdateDocument(documentID, "", content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove signature field"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signature field removed"})
}
