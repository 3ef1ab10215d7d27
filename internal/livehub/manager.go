// Package livehub fans server-side events out to connected websocket
// clients. Open pages subscribe once and refetch their view when a
// dataset_reloaded event arrives; the hub never receives application
// messages from clients.
package livehub

import (
	"log"

	"pickandtip/backend/internal/models"
)

// Client is one active subscriber connection.
type Client interface {
	GetID() string
	GetSendChannel() chan<- models.LiveEvent
	Run()
	Close()
}

// ManagerService owns the subscriber set and serializes register,
// unregister and broadcast through one goroutine.
type ManagerService struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	BroadcastCh  chan models.LiveEvent
}

// NewManagerService creates an empty hub.
func NewManagerService() *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		BroadcastCh:  make(chan models.LiveEvent, 16),
	}
}

// Run is the hub's main goroutine.
func (m *ManagerService) Run() {
	log.Println("Live hub started.")

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetID()] = client
			log.Printf("INFO: Live client connected: %s (%d total)", client.GetID(), len(m.Clients))

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetID()]; ok {
				delete(m.Clients, client.GetID())
				client.Close()
				log.Printf("INFO: Live client disconnected: %s (%d total)", client.GetID(), len(m.Clients))
			}

		case event := <-m.BroadcastCh:
			for id, client := range m.Clients {
				select {
				case client.GetSendChannel() <- event:
				default:
					// Slow consumer: drop it rather than block the hub.
					delete(m.Clients, id)
					client.Close()
					log.Printf("WARN: Dropped slow live client %s", id)
				}
			}
		}
	}
}

// Broadcast queues an event for every connected client.
func (m *ManagerService) Broadcast(event models.LiveEvent) {
	m.BroadcastCh <- event
}
