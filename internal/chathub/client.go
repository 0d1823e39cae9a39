package chathub

import "chatterbox/backend/internal/models"

// Client is the interface for one live bidirectional connection. It
// abstracts the underlying transport, allowing the hub to manage different
// client types uniformly.
type Client interface {
	// SessionID returns the unique identifier of this connection. It is
	// distinct from the user id: one user may hold several sessions.
	SessionID() string
	// UserID returns the id the session identified itself with via a join
	// event, or "" while the session is still inert.
	UserID() string
	// SetUserID records the identity the session joined as.
	SetUserID(string)

	// SendChannel returns the channel to which the hub sends events
	// intended for this specific session. It is a send-only channel.
	SendChannel() chan<- models.OutboundEvent

	// Run starts the client's read and write pumps, which handle incoming
	// and outgoing frames.
	Run()
	// Close shuts down the client's connection and associated channels.
	Close()
}

// InboundFrame is one decoded event received from a session, as handed to
// the hub's loop.
type InboundFrame struct {
	Session Client
	Event   models.InboundEvent
}
