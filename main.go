package main

import (
	"log"

	"charvault/internal/catalog"
	"charvault/internal/config"
	"charvault/internal/handlers"
	"charvault/internal/logger"
	"charvault/internal/middleware"
	"charvault/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.ParseLevel(cfg.App.LogLevel), cfg.App.IsDevelopment())

	st, err := store.Open(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal("Failed to open character store:", err)
	}

	cat, err := catalog.Load(cfg.Storage.CatalogDir)
	if err != nil {
		log.Fatal("Failed to load definition catalogs:", err)
	}
	logger.Info("Definition catalogs loaded",
		"items", len(cat.Items),
		"spells", len(cat.Spells),
		"skills", len(cat.Skills))

	if !cfg.App.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.MaxMultipartMemory = cfg.Storage.MaxUploadBytes

	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg))

	handlers.SetupRoutes(r, cfg, st, cat)

	log.Printf("Server starting on %s", cfg.Server.Address())
	log.Fatal(r.Run(cfg.Server.Address()))
}
