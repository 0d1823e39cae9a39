package chathub

// SessionRegistry maps live sessions to the logical channels they are
// subscribed to: one per user inbox, one per room. Subscriptions live only
// as long as the connection and are recomputed from the Room Directory on
// every reconnect. The registry is owned by the hub's Run goroutine, so
// mutation and lookup never interleave mid-operation.
type SessionRegistry struct {
	sessions map[string]Client              // session id -> client
	channels map[string]map[string]Client   // channel id -> session id -> client
	joined   map[string]map[string]struct{} // session id -> channel ids
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]Client),
		channels: make(map[string]map[string]Client),
		joined:   make(map[string]map[string]struct{}),
	}
}

// Register records a connected session. No channels are joined yet; a
// session is inert until it identifies itself.
func (r *SessionRegistry) Register(c Client) {
	r.sessions[c.SessionID()] = c
	if _, ok := r.joined[c.SessionID()]; !ok {
		r.joined[c.SessionID()] = make(map[string]struct{})
	}
}

// Join subscribes the session to a channel. Joining the same channel twice
// is a no-op, so repeated join events never double-deliver.
func (r *SessionRegistry) Join(c Client, channel string) {
	sid := c.SessionID()
	if _, ok := r.sessions[sid]; !ok {
		return
	}
	if _, ok := r.joined[sid][channel]; ok {
		return
	}

	if r.channels[channel] == nil {
		r.channels[channel] = make(map[string]Client)
	}
	r.channels[channel][sid] = c
	r.joined[sid][channel] = struct{}{}
}

// JoinUserSessions subscribes every session currently listening on the
// user's inbox channel to another channel. Used when a room is created after
// the initial connect, so existing members do not need to reconnect.
func (r *SessionRegistry) JoinUserSessions(userID, channel string) {
	for _, c := range r.channels[userID] {
		r.Join(c, channel)
	}
}

// Sessions returns the current listener set of a channel: exactly the
// sessions that joined it and have not since disconnected.
func (r *SessionRegistry) Sessions(channel string) []Client {
	clients := make([]Client, 0, len(r.channels[channel]))
	for _, c := range r.channels[channel] {
		clients = append(clients, c)
	}
	return clients
}

// All returns every connected session.
func (r *SessionRegistry) All() []Client {
	clients := make([]Client, 0, len(r.sessions))
	for _, c := range r.sessions {
		clients = append(clients, c)
	}
	return clients
}

// Channels returns the channel ids the session is subscribed to.
func (r *SessionRegistry) Channels(c Client) []string {
	ids := make([]string, 0, len(r.joined[c.SessionID()]))
	for ch := range r.joined[c.SessionID()] {
		ids = append(ids, ch)
	}
	return ids
}

// Get returns the registered client for a session id.
func (r *SessionRegistry) Get(sid string) (Client, bool) {
	c, ok := r.sessions[sid]
	return c, ok
}

// Unregister removes the session and all of its subscriptions. There is no
// persisted side effect.
func (r *SessionRegistry) Unregister(c Client) {
	sid := c.SessionID()
	for channel := range r.joined[sid] {
		delete(r.channels[channel], sid)
		if len(r.channels[channel]) == 0 {
			delete(r.channels, channel)
		}
	}
	delete(r.joined, sid)
	delete(r.sessions, sid)
}
