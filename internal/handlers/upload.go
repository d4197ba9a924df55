package handlers

import (
	"errors"
	"io"
	"net/http"

	"charvault/internal/config"
	"charvault/internal/ingest"
	"charvault/internal/logger"
	"charvault/internal/store"

	"github.com/gin-gonic/gin"
)

func handleUpload(c *gin.Context) {
	cfg := c.MustGet("config").(*config.Config)
	st := c.MustGet("store").(*store.Store)

	key := c.PostForm("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing key"})
		return
	}
	discordID := c.PostForm("DiscordId")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	if fileHeader.Size > cfg.Storage.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	// +1 so a stream longer than its declared size still trips the validator
	raw, err := io.ReadAll(io.LimitReader(file, cfg.Storage.MaxUploadBytes+1))
	if err != nil {
		logger.Error("Failed to read uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	candidate, err := ingest.Validate(raw, cfg.Storage.MaxUploadBytes)
	switch {
	case errors.Is(err, ingest.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	case errors.Is(err, ingest.ErrBadName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid save file: Missing or invalid CharName"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in file"})
		return
	}
	candidate.DiscordID = discordID

	record, updated, err := st.Upsert(candidate, key)
	if err != nil {
		logger.Error("Failed to store character",
			"char_name", candidate.CharName,
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store character"})
		return
	}

	message := "Character added"
	if updated {
		message = "Character updated"
	}

	logger.Info("Character stored",
		"char_name", record.CharName,
		"index", record.Index,
		"updated", updated)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"index":   record.Index,
		"updated": updated,
	})
}
