package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"DT-EDIT/internal/document"
	"DT-EDIT/internal/render"
	"DT-EDIT/internal/services"

	"github.com/gin-gonic/gin"
)

type DocumentsHandler struct {
	documentService *services.DocumentService
	versionService  *services.VersionService
	pdfService      *services.PDFService
	sendService     *services.SendService
}

func NewDocumentsHandler(documentService *services.DocumentService, versionService *services.VersionService, pdfService *services.PDFService, sendService *services.SendService) *DocumentsHandler {
	return &DocumentsHandler{
		documentService: documentService,
		versionService:  versionService,
		pdfService:      pdfService,
		sendService:     sendService,
	}
}

type CreateDocumentRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

type UpdateDocumentRequest struct {
	Name    string          `json:"name"`
	Content json.RawMessage `json:"content"`
}

type GeneratePDFRequest struct {
	HTMLContent string `json:"html_content"`
}

type GeneratePDFResponse struct {
	URL string `json:"url"`
}

type SendRequest struct {
	Recipients []services.Recipient `json:"recipients"`
	// Single-recipient shape, kept for older clients
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r *SendRequest) recipients() []services.Recipient {
	if len(r.Recipients) > 0 {
		return r.Recipients
	}
	if r.Email != "" {
		return []services.Recipient{{Email: r.Email, Message: r.Message}}
	}
	return nil
}

func (h *DocumentsHandler) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	doc, err := h.documentService.CreateDocument(req.Name, req.Kind)
	if err != nil {
		var dup *services.DuplicateNameError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{
				"error":          "A document with this name already exists",
				"suggested_name": dup.Suggested,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentsHandler) ListDocuments(c *gin.Context) {
	docs, err := h.documentService.ListDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentsHandler) GetDocument(c *gin.Context) {
	documentID := c.Param("documentId")
	doc, err := h.documentService.GetDocument(documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentsHandler) UpdateDocument(c *gin.Context) {
	documentID := c.Param("documentId")

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var content document.Content
	if len(req.Content) > 0 {
		// The content payload degrades per portion, so a partially
		// malformed save still carries the valid parts.
		content = document.ParseContent(req.Content)
	} else {
		// Name-only update keeps the stored payload.
		_, existing, err := h.documentService.GetContent(documentID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		content = existing
	}

	doc, err := h.documentService.UpdateDocument(documentID, req.Name, content)
	if err != nil {
		var dup *services.DuplicateNameError
		switch {
		case errors.As(err, &dup):
			c.JSON(http.StatusConflict, gin.H{
				"error":          "A document with this name already exists",
				"suggested_name": dup.Suggested,
			})
		case errors.Is(err, services.ErrSaveInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "A save for this document is already in progress"})
		case services.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		}
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *DocumentsHandler) DeleteDocument(c *gin.Context) {
	documentID := c.Param("documentId")
	if err := h.documentService.DeleteDocument(documentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// PreviewDocument renders the composed document HTML in the requested mode.
// ?mode=editable|readonly|printing, ?zoom=0.5..2.0
func (h *DocumentsHandler) PreviewDocument(c *gin.Context) {
	documentID := c.Param("documentId")

	doc, content, err := h.documentService.GetContent(documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	mode := render.ParseMode(c.Query("mode"))
	zoom := 1.0
	if zoomStr := c.Query("zoom"); zoomStr != "" {
		if parsed, err := strconv.ParseFloat(zoomStr, 64); err == nil && parsed > 0 {
			zoom = parsed
		}
	}

	if content.DocContent.Title == "" {
		content.DocContent.Title = doc.Name
	}

	html := render.Compose(render.ComposeInput{
		Doc:      content.DocContent,
		Bindings: content.FormData,
		Styles:   content.Styles,
		Fields:   content.Signatures,
		Mode:     mode,
		Zoom:     zoom,
	})

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

// GeneratePDF renders the print-mode document, converts it and responds
// with the download URL. An html_content override skips the composer.
func (h *DocumentsHandler) GeneratePDF(c *gin.Context) {
	documentID := c.Param("documentId")

	doc, content, err := h.documentService.GetContent(documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var req GeneratePDFRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
	}

	htmlContent := req.HTMLContent
	if htmlContent == "" {
		if content.DocContent.Title == "" {
			content.DocContent.Title = doc.Name
		}
		htmlContent = render.ComposeForExport(content.DocContent, content.FormData, content.Styles, content.Signatures)
	}

	url, err := h.pdfService.ExportDocument(c.Request.Context(), documentID, htmlContent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.JSON(http.StatusOK, GeneratePDFResponse{URL: url})
}

func (h *DocumentsHandler) SendDocument(c *gin.Context) {
	h.deliver(c, false)
}

func (h *DocumentsHandler) RemindDocument(c *gin.Context) {
	h.deliver(c, true)
}

func (h *DocumentsHandler) deliver(c *gin.Context, remind bool) {
	documentID := c.Param("documentId")

	doc, err := h.documentService.GetDocument(documentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	recipients := req.recipients()
	if len(recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one recipient is required"})
		return
	}

	var report services.SendReport
	if remind {
		report, err = h.sendService.RemindDocument(doc, recipients)
	} else {
		report, err = h.sendService.SendDocument(doc, recipients)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !report.AllSucceeded() {
		c.JSON(http.StatusMultiStatus, gin.H{
			"message": "Some recipients failed",
			"report":  report,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Delivered to all recipients", "report": report})
}
