package chathub

import (
	"chatterbox/backend/internal/models"
	"chatterbox/backend/internal/storage"
	"encoding/json"
	"log"
)

// ManagerService is the hub: it owns the session registry, feeds inbound
// frames through the dispatcher, publishes the resulting envelopes on the
// event bus and delivers bus envelopes to the locally subscribed sessions.
// All registry mutation happens on the single Run goroutine.
type ManagerService struct {
	Registry   *SessionRegistry
	Dispatcher *DispatcherService
	Storage    storage.Storage

	RegisterCh   chan Client
	UnregisterCh chan Client
	IncomingCh   chan InboundFrame

	// PubSubCh carries envelopes arriving from the event bus back into the
	// loop for local delivery.
	PubSubCh chan models.EventEnvelope
}

// NewManagerService creates the hub with its registry and dispatcher.
func NewManagerService(s storage.Storage) *ManagerService {
	return &ManagerService{
		Registry:     NewSessionRegistry(),
		Dispatcher:   NewDispatcherService(s),
		Storage:      s,
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		IncomingCh:   make(chan InboundFrame),
		PubSubCh:     make(chan models.EventEnvelope),
	}
}

// Run is the hub's main loop. Every inbound frame and every bus envelope is
// processed here in arrival order.
func (m *ManagerService) Run() {
	m.startBusListener()

	for {
		select {
		case c := <-m.RegisterCh:
			m.Registry.Register(c)
			log.Printf("Session %s connected", c.SessionID())

		case c := <-m.UnregisterCh:
			if _, ok := m.Registry.Get(c.SessionID()); ok {
				m.Registry.Unregister(c)
				c.Close()
				if uid := c.UserID(); uid != "" {
					log.Printf("Session %s (user %s) disconnected", c.SessionID(), uid)
				} else {
					log.Printf("Session %s disconnected", c.SessionID())
				}
			}

		case frame := <-m.IncomingCh:
			m.handleFrame(frame)

		case env := <-m.PubSubCh:
			m.deliver(env)
		}
	}
}

// startBusListener subscribes to the event bus and feeds envelopes into the
// loop.
func (m *ManagerService) startBusListener() {
	pubsub := m.Storage.SubscribeEvents()
	if pubsub == nil {
		log.Printf("WARNING: Event bus unavailable, delivery disabled")
		return
	}

	go func() {
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var env models.EventEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Printf("Error unmarshalling bus envelope: %v", err)
				continue
			}
			m.PubSubCh <- env
		}
	}()
}

func (m *ManagerService) handleFrame(f InboundFrame) {
	switch f.Event.Event {
	case models.EventJoin:
		m.handleJoin(f)
	case models.EventJoinRoom:
		m.handleJoinRoom(f)
	default:
		envs := m.Dispatcher.Dispatch(f.Session.SessionID(), f.Event)
		for _, env := range envs {
			if err := m.Storage.PublishEvent(env.Channel, env); err != nil {
				log.Printf("ERROR: Failed to publish to %s: %v", env.Channel, err)
			}

			// A new room reaches its members on their inbox channels; their
			// live sessions start listening on the room channel right away,
			// without a reconnect.
			if env.Event == models.EventRoomCreated {
				if room, ok := env.Data.(*models.Room); ok {
					m.Registry.JoinUserSessions(env.Channel, room.ID)
				}
			}
		}
	}
}

// handleJoin subscribes the session to its user inbox channel and to every
// room channel the Room Directory lists for that user. Joining twice with
// the same id yields the same subscription set.
func (m *ManagerService) handleJoin(f InboundFrame) {
	var p models.JoinPayload
	if err := json.Unmarshal(f.Event.Data, &p); err != nil {
		log.Printf("WARNING: Malformed join payload dropped: %v", err)
		return
	}
	if !models.ValidID(p.UserID) {
		log.Printf("WARNING: join with malformed user id dropped")
		return
	}

	f.Session.SetUserID(p.UserID)
	m.Registry.Join(f.Session, p.UserID)

	rooms, err := m.Storage.GetRoomsForUser(p.UserID)
	if err != nil {
		return
	}
	for _, room := range rooms {
		m.Registry.Join(f.Session, room.ID)
	}
}

// handleJoinRoom subscribes the session to a single room channel, used when
// a room appears after the initial connect.
func (m *ManagerService) handleJoinRoom(f InboundFrame) {
	var p models.JoinRoomPayload
	if err := json.Unmarshal(f.Event.Data, &p); err != nil {
		log.Printf("WARNING: Malformed join_room payload dropped: %v", err)
		return
	}
	if !models.ValidID(p.RoomID) {
		log.Printf("WARNING: join_room with malformed room id dropped")
		return
	}

	m.Registry.Join(f.Session, p.RoomID)
}

// deliver fans one envelope out to every locally subscribed session.
func (m *ManagerService) deliver(env models.EventEnvelope) {
	var targets []Client
	if env.Channel == models.BroadcastChannel {
		targets = m.Registry.All()
	} else {
		targets = m.Registry.Sessions(env.Channel)
	}

	out := models.OutboundEvent{Event: env.Event, Data: env.Data}
	for _, c := range targets {
		if env.OriginSID != "" && c.SessionID() == env.OriginSID {
			continue
		}

		select {
		case c.SendChannel() <- out:
		default:
			// A full send buffer means the client stopped draining; drop
			// the session rather than block the loop.
			m.Registry.Unregister(c)
			c.Close()
		}
	}
}
