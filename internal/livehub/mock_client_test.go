package livehub_test

import (
	"pickandtip/backend/internal/models"
)

type MockClient struct {
	id          string
	closed      bool
	RecvChannel chan models.LiveEvent
}

func newMockClient(id string) *MockClient {
	return &MockClient{
		id:          id,
		RecvChannel: make(chan models.LiveEvent, 10),
	}
}

func (c *MockClient) GetID() string {
	return c.id
}

func (c *MockClient) GetSendChannel() chan<- models.LiveEvent {
	return c.RecvChannel
}

func (c *MockClient) Close() {
	c.closed = true
}

func (c *MockClient) Run() {
	// Not needed for testing
}
