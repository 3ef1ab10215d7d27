package models

// LiveEvent is pushed to connected websocket clients when server-side
// state they render from has changed.
type LiveEvent struct {
	Type        string `json:"type"`  // "dataset_reloaded"
	Topic       string `json:"topic"` // topic slug, or "all"
	LastUpdated string `json:"lastUpdated,omitempty"`
}
