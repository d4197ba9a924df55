package handlers

import (
	"net/http"

	"charvault/internal/catalog"
	"charvault/internal/config"
	"charvault/internal/middleware"
	"charvault/internal/store"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, st *store.Store, cat *catalog.Catalog) {
	r.Use(middleware.LogRequests())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders(cfg))
	r.Use(addStoreContext(st))
	r.Use(addCatalogContext(cat))
	r.Use(addConfigContext(cfg))

	r.GET("/healthz", handleHealth)

	api := r.Group("/api")
	{
		api.POST("/upload", middleware.MutationRateLimit(cfg), handleUpload)
		api.GET("/characters", handleListCharacters)
		api.GET("/character/:index", handleGetCharacter)
		api.GET("/character/:index/equipment", handleGetEquipment)
		api.DELETE("/character", middleware.MutationRateLimit(cfg), handleDeleteCharacter)
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addStoreContext(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", st)
		c.Next()
	}
}

func addCatalogContext(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("catalog", cat)
		c.Next()
	}
}

func addConfigContext(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	}
}
