package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"DT-EDIT/internal/storage"

	"github.com/starwalkn/gotenberg-go-client/v8"
	"github.com/starwalkn/gotenberg-go-client/v8/document"
)

type PDFService struct {
	client    *gotenberg.Client
	gcsClient *storage.GCSClient
	timeout   time.Duration
}

func NewPDFService(gotenbergURL string, timeoutStr string, gcsClient *storage.GCSClient) (*PDFService, error) {
	// Parse timeout from configuration
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		fmt.Printf("Warning: failed to parse timeout '%s', using default 30s: %v\n", timeoutStr, err)
	}

	// Create HTTP client with the configured timeout
	httpClient := &http.Client{
		Timeout: timeout,
	}

	client, err := gotenberg.NewClient(gotenbergURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gotenberg client: %w", err)
	}

	return &PDFService{
		client:    client,
		gcsClient: gcsClient,
		timeout:   timeout,
	}, nil
}

// ConvertHTMLToPDF renders a standalone HTML document to PDF through the
// Gotenberg Chromium route.
func (s *PDFService) ConvertHTMLToPDF(ctx context.Context, htmlContent string) (io.ReadCloser, error) {
	return s.convertWithRetry(ctx, htmlContent, 3)
}

func (s *PDFService) convertWithRetry(ctx context.Context, htmlContent string, maxRetries int) (io.ReadCloser, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		convertCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		index, err := document.FromString("index.html", htmlContent)
		if err != nil {
			return nil, fmt.Errorf("failed to create document from HTML: %w", err)
		}

		req := gotenberg.NewHTMLRequest(index)

		resp, err := s.client.Send(convertCtx, req)
		if err == nil {
			return resp.Body, nil
		}

		lastErr = err
		fmt.Printf("PDF conversion attempt %d/%d failed: %v\n", attempt, maxRetries, err)

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	return nil, fmt.Errorf("failed to convert document after %d attempts: %w", maxRetries, lastErr)
}

// ExportDocument converts the HTML, uploads the resulting PDF to GCS and
// returns a signed download URL.
func (s *PDFService) ExportDocument(ctx context.Context, documentID, htmlContent string) (string, error) {
	pdfReader, err := s.ConvertHTMLToPDF(ctx, htmlContent)
	if err != nil {
		return "", err
	}
	defer pdfReader.Close()

	objectName := storage.GenerateExportObjectName(documentID)
	if _, err := s.gcsClient.UploadFile(ctx, pdfReader, objectName, "application/pdf"); err != nil {
		return "", fmt.Errorf("failed to upload PDF to GCS: %w", err)
	}

	url, err := s.gcsClient.GetSignedURL(objectName, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to sign PDF URL: %w", err)
	}

	return url, nil
}

// ConvertHTMLToPDFToFile stores the converted PDF at outputPath.
func (s *PDFService) ConvertHTMLToPDFToFile(ctx context.Context, htmlContent string, outputPath string) error {
	index, err := document.FromString("index.html", htmlContent)
	if err != nil {
		return fmt.Errorf("failed to create document from HTML: %w", err)
	}

	req := gotenberg.NewHTMLRequest(index)

	if err := s.client.Store(ctx, req, outputPath); err != nil {
		return fmt.Errorf("failed to store converted document: %w", err)
	}

	return nil
}

func (s *PDFService) Close() error {
	// Gotenberg client doesn't need explicit closing
	return nil
}
