package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DT-EDIT/internal"
	"DT-EDIT/internal/config"
	"DT-EDIT/internal/handlers"
	"DT-EDIT/internal/services"
	"DT-EDIT/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := internal.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer internal.CloseDB()

	ctx := context.Background()
	gcsClient, err := storage.NewGCSClient(ctx, cfg.GCS.BucketName, cfg.GCS.ProjectID, cfg.GCS.CredentialsPath)
	if err != nil {
		log.Fatalf("Failed to create GCS client: %v", err)
	}
	defer gcsClient.Close()

	pdfService, err := services.NewPDFService(cfg.Gotenberg.URL, cfg.Gotenberg.Timeout, gcsClient)
	if err != nil {
		log.Fatalf("Failed to create PDF service: %v", err)
	}

	activityLogService := services.NewActivityLogService()
	businessService := services.NewBusinessService()
	versionService := services.NewVersionService()
	documentService := services.NewDocumentService(businessService, versionService)
	sendService := services.NewSendService(nil)

	documentsHandler := handlers.NewDocumentsHandler(documentService, versionService, pdfService, sendService)
	versionsHandler := handlers.NewVersionsHandler(versionService)
	signaturesHandler := handlers.NewSignaturesHandler(documentService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	logsHandler := handlers.NewLogsHandler(activityLogService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(activityLogService.LoggingMiddleware())

	// Initialize file cleanup service (export scratch files older than 24 hours will be deleted)
	cleanupService := handlers.NewFileCleanupService(24*time.Hour, cfg.Server.ExportDir)
	cleanupService.Start()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Shutting down server...")
		cleanupService.Stop()
		internal.CloseDB()
		os.Exit(0)
	}()

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Document CRUD and rendering
		v1.POST("/documents", documentsHandler.CreateDocument)
		v1.GET("/documents", documentsHandler.ListDocuments)
		v1.GET("/documents/:documentId", documentsHandler.GetDocument)
		v1.PUT("/documents/:documentId", documentsHandler.UpdateDocument)
		v1.DELETE("/documents/:documentId", documentsHandler.DeleteDocument)
		v1.GET("/documents/:documentId/preview", documentsHandler.PreviewDocument)

		// Version history
		v1.GET("/documents/:documentId/versions", versionsHandler.ListVersions)
		v1.POST("/documents/:documentId/versions/:versionId/restore", versionsHandler.RestoreVersion)

		// Signature field placement
		v1.POST("/documents/:documentId/signatures", signaturesHandler.PlaceField)
		v1.PUT("/documents/:documentId/signatures/:fieldId/position", signaturesHandler.MoveField)
		v1.PUT("/documents/:documentId/signatures/:fieldId", signaturesHandler.UpdateField)
		v1.DELETE("/documents/:documentId/signatures/:fieldId", signaturesHandler.RemoveField)

		// Export and delivery
		v1.POST("/documents/:documentId/generate-pdf", documentsHandler.GeneratePDF)
		v1.POST("/documents/:documentId/send", documentsHandler.SendDocument)
		v1.POST("/documents/:documentId/remind", documentsHandler.RemindDocument)

		// Business profile
		v1.GET("/user", businessHandler.GetProfile)
		v1.PUT("/user", businessHandler.UpdateProfile)

		// Activity logs
		v1.GET("/logs", logsHandler.GetAllLogs)
		v1.GET("/logs/stats", logsHandler.GetLogStats)
		v1.GET("/logs/exports", logsHandler.GetExportLogs)
		v1.GET("/logs/history", logsHandler.GetHistory)
	}

	log.Printf("Starting server on :%s", cfg.Server.Port)
	r.Run(":" + cfg.Server.Port)
}
