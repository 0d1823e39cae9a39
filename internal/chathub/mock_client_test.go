package chathub_test

import "chatterbox/backend/internal/models"

// mockClient is a minimal in-memory Client. Events sent to it land on
// RecvChannel for the test to inspect.
type mockClient struct {
	sid         string
	user        string
	RecvChannel chan models.OutboundEvent
}

func newMockClient(sid string) *mockClient {
	return &mockClient{
		sid:         sid,
		RecvChannel: make(chan models.OutboundEvent, 16),
	}
}

func (c *mockClient) SessionID() string { return c.sid }

func (c *mockClient) UserID() string { return c.user }

func (c *mockClient) SetUserID(id string) { c.user = id }

func (c *mockClient) SendChannel() chan<- models.OutboundEvent { return c.RecvChannel }

func (c *mockClient) Run() {}

func (c *mockClient) Close() {}
