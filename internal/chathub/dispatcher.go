package chathub

import (
	"chatterbox/backend/internal/models"
	"chatterbox/backend/internal/storage"
	"encoding/json"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

// DispatcherService is the event-routing core. For each inbound event it
// validates the payload, applies the persisted side effect and resolves the
// deterministic set of destination channels, independent of which sessions
// happen to be subscribed to them at this instant.
type DispatcherService struct {
	Storage  storage.Storage
	validate *validator.Validate
}

// NewDispatcherService creates a new Dispatcher.
func NewDispatcherService(s storage.Storage) *DispatcherService {
	v := validator.New()
	// The uuid tag is backed by the same predicate the join and HTTP paths
	// use, so id strictness is identical on every path.
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		return models.ValidID(fl.Field().String())
	})

	return &DispatcherService{
		Storage:  s,
		validate: v,
	}
}

// Dispatch routes one inbound event to its destination envelope set. A
// malformed or failing event yields no envelopes: nothing is surfaced to the
// sender, nothing is persisted, nothing is fanned out.
func (d *DispatcherService) Dispatch(sid string, ev models.InboundEvent) []models.EventEnvelope {
	switch ev.Event {
	case models.EventSendMessage:
		return d.handleSendMessage(ev.Data)
	case models.EventChatRequest:
		return d.handleChatRequest(ev.Data)
	case models.EventRespondRequest:
		return d.handleRespondRequest(ev.Data)
	case models.EventCreateRoom:
		return d.handleCreateRoom(ev.Data)
	case models.EventLeaveRoom:
		return d.handleLeaveRoom(ev.Data)
	case models.EventDeleteChat:
		return d.handleDeleteChat(ev.Data)
	case models.EventProfileUpdated:
		return d.handleProfileUpdated(sid, ev.Data)
	default:
		log.Printf("WARNING: Unknown event %q dropped", ev.Event)
		return nil
	}
}

// decode unmarshals and validates an event payload. Identity references are
// rejected unless they are canonical UUIDs.
func (d *DispatcherService) decode(data json.RawMessage, dst any) bool {
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("WARNING: Malformed event payload dropped: %v", err)
		return false
	}
	if err := d.validate.Struct(dst); err != nil {
		log.Printf("WARNING: Invalid event payload dropped: %v", err)
		return false
	}
	return true
}

func (d *DispatcherService) handleSendMessage(data json.RawMessage) []models.EventEnvelope {
	var p models.SendMessagePayload
	if !d.decode(data, &p) {
		return nil
	}

	kind := p.Kind
	if kind == "" {
		kind = models.MessageKindText
	}

	msg := &models.Message{
		SenderID: p.Sender,
		TargetID: p.Receiver,
		IsRoom:   p.IsRoom,
		Kind:     kind,
		Text:     p.Text,
		File:     p.File,
	}
	if err := d.Storage.SaveMessage(msg); err != nil {
		return nil
	}

	envs := []models.EventEnvelope{
		{Channel: p.Receiver, Event: models.EventReceiveMessage, Data: msg},
	}
	// For direct messages the sender's inbox channel is addressed too, so
	// the sender's other devices observe the sent message.
	if !p.IsRoom && p.Sender != p.Receiver {
		envs = append(envs, models.EventEnvelope{
			Channel: p.Sender, Event: models.EventReceiveMessage, Data: msg,
		})
	}
	return envs
}

func (d *DispatcherService) handleChatRequest(data json.RawMessage) []models.EventEnvelope {
	var p models.ChatRequestPayload
	if !d.decode(data, &p) {
		return nil
	}

	sender, err := d.Storage.GetUserByID(p.SenderID)
	if err != nil {
		return nil
	}
	if sender == nil {
		log.Printf("WARNING: chat_request from unknown user %s dropped", p.SenderID)
		return nil
	}

	return []models.EventEnvelope{{
		Channel: p.ReceiverID,
		Event:   models.EventIncomingRequest,
		Data:    models.IncomingRequestData{SenderID: sender.ID, SenderName: sender.Name},
	}}
}

func (d *DispatcherService) handleRespondRequest(data json.RawMessage) []models.EventEnvelope {
	var p models.RespondRequestPayload
	if !d.decode(data, &p) {
		return nil
	}

	return []models.EventEnvelope{{
		Channel: p.SenderID,
		Event:   models.EventRequestResult,
		Data:    models.RequestResultData{Accepted: p.Accepted, ReceiverName: p.ReceiverName},
	}}
}

func (d *DispatcherService) handleCreateRoom(data json.RawMessage) []models.EventEnvelope {
	var p models.CreateRoomPayload
	if !d.decode(data, &p) {
		return nil
	}

	// The creator is always a member; duplicates collapse.
	members := lo.Uniq(append([]string{p.Creator}, p.Members...))

	room := &models.Room{
		ID:        uuid.New().String(),
		Name:      p.Name,
		Kind:      p.Kind,
		Avatar:    p.Avatar,
		CreatorID: p.Creator,
		Members:   pq.StringArray(members),
		Admins:    pq.StringArray{p.Creator},
	}
	if err := d.Storage.SaveRoom(room); err != nil {
		log.Printf("ERROR: Failed to save room %q: %v", p.Name, err)
		return nil
	}

	// Each member gets the full room descriptor so clients can render it
	// without a follow-up fetch.
	envs := make([]models.EventEnvelope, 0, len(members))
	for _, member := range members {
		envs = append(envs, models.EventEnvelope{
			Channel: member, Event: models.EventRoomCreated, Data: room,
		})
	}
	return envs
}

func (d *DispatcherService) handleLeaveRoom(data json.RawMessage) []models.EventEnvelope {
	var p models.LeaveRoomPayload
	if !d.decode(data, &p) {
		return nil
	}

	room, err := d.Storage.RemoveRoomMember(p.RoomID, p.UserID)
	if err != nil {
		return nil
	}
	if room == nil {
		log.Printf("WARNING: leave_room for unknown room %s ignored", p.RoomID)
		return nil
	}

	name := p.UserID
	if user, err := d.Storage.GetUserByID(p.UserID); err == nil && user != nil {
		name = user.Name
	}

	sys := &models.Message{
		SenderID: p.UserID,
		TargetID: p.RoomID,
		IsRoom:   true,
		Kind:     models.MessageKindSystem,
		Text:     name + " left " + room.Name,
	}
	if err := d.Storage.SaveMessage(sys); err != nil {
		// Membership already changed; announce the departure anyway.
		log.Printf("ERROR: Failed to save departure notice for room %s: %v", p.RoomID, err)
	}

	return []models.EventEnvelope{
		{Channel: p.RoomID, Event: models.EventReceiveMessage, Data: sys},
		// The leaving user's own sessions may still be subscribed and need
		// an explicit acknowledgement to drop the room locally.
		{Channel: p.UserID, Event: models.EventLeftRoom, Data: models.LeftRoomData{UserID: p.UserID, RoomID: p.RoomID}},
	}
}

func (d *DispatcherService) handleDeleteChat(data json.RawMessage) []models.EventEnvelope {
	var p models.DeleteChatPayload
	if !d.decode(data, &p) {
		return nil
	}
	if p.IsRoom {
		log.Printf("WARNING: delete_chat on a room dropped")
		return nil
	}

	if err := d.Storage.DeleteConversation(p.UserID, p.TargetID); err != nil {
		return nil
	}

	// The initiating client already knows it requested the deletion, so
	// only the other party is notified.
	return []models.EventEnvelope{{
		Channel: p.TargetID,
		Event:   models.EventChatCleared,
		Data:    models.ChatClearedData{UserID: p.UserID},
	}}
}

func (d *DispatcherService) handleProfileUpdated(sid string, data json.RawMessage) []models.EventEnvelope {
	if !json.Valid(data) {
		log.Printf("WARNING: Malformed profile_updated payload dropped")
		return nil
	}

	// Profile persistence happens on the HTTP path; this event only tells
	// every other connected session to refresh the contact.
	return []models.EventEnvelope{{
		Channel:   models.BroadcastChannel,
		Event:     models.EventContactUpdated,
		Data:      data,
		OriginSID: sid,
	}}
}
