package handler

import (
	"pickandtip/backend/internal/dataset"
	"pickandtip/backend/internal/livehub"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/notify"
	"pickandtip/backend/internal/storage"
)

// Handler carries the dependencies of every HTTP endpoint. Notifier is
// nil when no Telegram bot is configured.
type Handler struct {
	Store     *dataset.Store
	Loader    *dataset.Loader
	Localizer *localization.Localizer
	Storage   storage.Storage
	Hub       *livehub.ManagerService
	Notifier  *notify.Notifier
	JWTSecret []byte
}

func NewHandler(store *dataset.Store, loader *dataset.Loader, loc *localization.Localizer,
	s storage.Storage, hub *livehub.ManagerService, notifier *notify.Notifier, jwtSecret []byte) *Handler {
	return &Handler{
		Store:     store,
		Loader:    loader,
		Localizer: loc,
		Storage:   s,
		Hub:       hub,
		Notifier:  notifier,
		JWTSecret: jwtSecret,
	}
}
