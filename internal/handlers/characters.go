package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"charvault/internal/catalog"
	"charvault/internal/equip"
	"charvault/internal/logger"
	"charvault/internal/store"

	"github.com/gin-gonic/gin"
)

func handleListCharacters(c *gin.Context) {
	st := c.MustGet("store").(*store.Store)

	summaries, err := st.ListSummaries()
	if err != nil {
		logger.Error("Failed to list characters", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load characters"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func handleGetCharacter(c *gin.Context) {
	st := c.MustGet("store").(*store.Store)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	record, err := st.GetByIndex(index)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Character not found"})
			return
		}
		logger.Error("Failed to load character", "index", index, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load character"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func handleGetEquipment(c *gin.Context) {
	st := c.MustGet("store").(*store.Store)
	cat := c.MustGet("catalog").(*catalog.Catalog)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	record, err := st.GetByIndex(index)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Character not found"})
			return
		}
		logger.Error("Failed to load character", "index", index, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load character"})
		return
	}

	c.JSON(http.StatusOK, equip.Resolve(record, cat.Items))
}

func handleDeleteCharacter(c *gin.Context) {
	st := c.MustGet("store").(*store.Store)

	var req struct {
		CharacterName string `json:"characterName"`
		Key           string `json:"key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CharacterName == "" || req.Key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing character name or key"})
		return
	}

	err := st.Delete(req.CharacterName, req.Key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Character not found"})
		return
	case errors.Is(err, store.ErrInvalidKey):
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid key"})
		return
	case err != nil:
		logger.Error("Failed to delete character",
			"char_name", req.CharacterName,
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete character"})
		return
	}

	logger.Info("Character deleted", "char_name", req.CharacterName)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Character deleted successfully",
	})
}
