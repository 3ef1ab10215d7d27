package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pickandtip/backend/internal/config"
	"pickandtip/backend/internal/models"
)

// contactRequest is the payload of a completed contact-form wizard. The
// multi-step flow lives in the browser; the server re-validates the
// required field of each step before persisting.
type contactRequest struct {
	Name    string   `json:"name" binding:"required"`
	Email   string   `json:"email" binding:"required,email"`
	Subject string   `json:"subject" binding:"required"`
	Message string   `json:"message" binding:"required"`
	Topics  []string `json:"topics"`
	Lang    string   `json:"lang"`
}

// PostContact validates, rate-limits and persists a contact submission,
// then notifies the admin chat when a bot is configured.
func (h *Handler) PostContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid form fields"})
		return
	}

	if len(req.Message) > config.ContactMessageMaxLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message too long"})
		return
	}

	allowed, err := h.Storage.AllowContact(c.ClientIP())
	if err != nil {
		log.Printf("ERROR: Contact rate limit check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process submission"})
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many submissions, try again later"})
		return
	}

	lang := req.Lang
	if lang != "fr" && lang != "en" {
		lang = "fr"
	}

	sub := &models.ContactSubmission{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Subject:  strings.TrimSpace(req.Subject),
		Message:  req.Message,
		Topics:   req.Topics,
		Language: lang,
	}

	if err := h.Storage.SaveSubmission(sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	}

	if h.Notifier != nil {
		go h.Notifier.SubmissionReceived(sub)
	}

	c.JSON(http.StatusCreated, gin.H{"id": sub.ID})
}
