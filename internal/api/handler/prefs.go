package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pickandtip/backend/internal/localization"
)

// GetLanguagePreference returns the bearer's stored language tag. A
// visitor with no stored preference gets the default language.
func (h *Handler) GetLanguagePreference(c *gin.Context) {
	anonID, err := h.bearerAnonID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	lang, err := h.Storage.GetLanguagePreference(anonID)
	if err != nil {
		log.Printf("ERROR: Failed to read language preference for %s: %v", anonID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read preference"})
		return
	}
	if lang == "" {
		lang = localization.DefaultLanguage
	}

	c.JSON(http.StatusOK, gin.H{"lang": lang})
}

// PutLanguagePreference stores the bearer's language tag.
func (h *Handler) PutLanguagePreference(c *gin.Context) {
	anonID, err := h.bearerAnonID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var body struct {
		Lang string `json:"lang" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || (body.Lang != "fr" && body.Lang != "en") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lang must be fr or en"})
		return
	}

	if err := h.Storage.SetLanguagePreference(anonID, body.Lang); err != nil {
		log.Printf("ERROR: Failed to store language preference for %s: %v", anonID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store preference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lang": body.Lang})
}
