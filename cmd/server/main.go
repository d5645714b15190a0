package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"govportal/internal/config"
	"govportal/internal/content"
	"govportal/internal/handlers"
	"govportal/internal/middleware"
	"govportal/internal/repositories/interfaces"
	"govportal/internal/repositories/mongodb"
	"govportal/internal/services"
	"govportal/pkg/database"
	"govportal/pkg/logger"
	"govportal/pkg/storage"
	"govportal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}

	blobs, err := newStorageProvider(cfg.Storage)
	if err != nil {
		appLogger.Fatalf("Failed to initialize blob storage: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Uploaded blobs are read back under a static prefix when stored locally.
	if local, ok := blobs.(*storage.LocalStorage); ok {
		router.Static("/uploads", local.BasePath())
	}

	api := router.Group("/api")

	contentRepos := make(map[string]interfaces.ContentRepository)
	mediaFields := make(map[string][]string)

	for _, desc := range content.Registry() {
		repo := mongodb.NewContentRepository(db.Database, desc)
		service := services.NewContentService(desc, repo, blobs, appLogger)
		handler := handlers.NewContentHandler(service, blobs, cfg.Upload, appLogger)
		routes.SetupContentRoutes(api, handler, cfg.Security.JWTSecret)

		contentRepos[desc.Name] = repo
		mediaFields[desc.Name] = desc.MediaFieldNames()
	}

	pageRepo := mongodb.NewPageRepository(db.Database)
	pageService := services.NewPageService(pageRepo, appLogger)
	pageHandler := handlers.NewPageHandler(pageService, appLogger)
	routes.SetupPageRoutes(api, pageHandler, cfg.Security.JWTSecret)

	userRepo := mongodb.NewUserRepository(db.Database)
	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, cfg.Security.JWTTokenTTL, cfg.Security.BcryptCost, appLogger)
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	routes.SetupAuthRoutes(api, authHandler, cfg.Security.JWTSecret)

	reconciler := services.NewReconcileService(contentRepos, mediaFields, blobs, cfg.Upload.ReconcileGrace, appLogger)
	reconcileCtx, cancelReconcile := context.WithCancel(context.Background())
	defer cancelReconcile()
	go reconciler.Run(reconcileCtx, cfg.Upload.ReconcileEvery)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	appLogger.Fatalf("Server stopped: %v", http.ListenAndServe(addr, router))
}

func newStorageProvider(cfg *config.StorageConfig) (storage.Provider, error) {
	switch cfg.Provider {
	case "s3":
		return storage.NewAWSS3Storage(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	case "gcp":
		return storage.NewGCPStorage(cfg.GCP.ProjectID, cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}
