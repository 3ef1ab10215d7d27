package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pickandtip/backend/internal/models"
)

// PostReload re-reads every dataset from disk and swaps the in-memory
// snapshot. On failure the previous snapshot keeps serving. Connected
// clients are told to refetch.
func (h *Handler) PostReload(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	if err := h.Store.Reload(h.Loader); err != nil {
		log.Printf("ERROR: Dataset reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reload failed, previous data kept"})
		return
	}

	h.Hub.Broadcast(models.LiveEvent{Type: "dataset_reloaded", Topic: "all"})
	if h.Notifier != nil {
		go h.Notifier.DatasetsReloaded(len(h.Store.Countries()))
	}

	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "countries": len(h.Store.Countries())})
}
