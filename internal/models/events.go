package models

import "encoding/json"

// Inbound event names accepted over the socket.
const (
	EventJoin           = "join"
	EventJoinRoom       = "join_room"
	EventSendMessage    = "send_message"
	EventChatRequest    = "chat_request"
	EventRespondRequest = "respond_request"
	EventCreateRoom     = "create_room"
	EventLeaveRoom      = "leave_room"
	EventDeleteChat     = "delete_chat"
	EventProfileUpdated = "profile_updated"
)

// Outbound event names emitted to clients.
const (
	EventIncomingRequest = "incoming_request"
	EventRequestResult   = "request_result"
	EventRoomCreated     = "room_created"
	EventReceiveMessage  = "receive_message"
	EventLeftRoom        = "left_room"
	EventChatCleared     = "chat_cleared"
	EventContactUpdated  = "contact_updated"
)

// BroadcastChannel addresses every connected session instead of a single
// user inbox or room channel.
const BroadcastChannel = "broadcast"

// InboundEvent is the raw frame read from a client socket.
type InboundEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OutboundEvent is a frame written to a client socket.
type OutboundEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// EventEnvelope is an outbound event together with its destination channel.
// It is what travels on the event bus. OriginSID lets broadcast delivery
// skip the session that produced the event.
type EventEnvelope struct {
	Channel   string `json:"channel"`
	Event     string `json:"event"`
	Data      any    `json:"data"`
	OriginSID string `json:"originSid,omitempty"`
}

// Inbound payloads. Identity references are validated strictly on this path:
// an event carrying a malformed id is dropped, never persisted or fanned out.

type JoinPayload struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

type JoinRoomPayload struct {
	RoomID string `json:"roomId" validate:"required,uuid"`
}

type SendMessagePayload struct {
	Sender   string `json:"sender" validate:"required,uuid"`
	Receiver string `json:"receiver" validate:"required,uuid"`
	Text     string `json:"text"`
	File     string `json:"file"`
	Kind     string `json:"type"`
	IsRoom   bool   `json:"isRoom"`
}

type ChatRequestPayload struct {
	SenderID   string `json:"senderId" validate:"required,uuid"`
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
}

type RespondRequestPayload struct {
	Accepted     bool   `json:"accepted"`
	SenderID     string `json:"senderId" validate:"required,uuid"`
	ReceiverName string `json:"receiverName"`
}

type CreateRoomPayload struct {
	Name    string   `json:"name" validate:"required"`
	Kind    string   `json:"type" validate:"required,oneof=group channel"`
	Avatar  string   `json:"avatar"`
	Creator string   `json:"creator" validate:"required,uuid"`
	Members []string `json:"members" validate:"required,dive,uuid"`
}

type LeaveRoomPayload struct {
	UserID string `json:"userId" validate:"required,uuid"`
	RoomID string `json:"roomId" validate:"required,uuid"`
}

type DeleteChatPayload struct {
	UserID   string `json:"userId" validate:"required,uuid"`
	TargetID string `json:"targetId" validate:"required,uuid"`
	IsRoom   bool   `json:"isRoom"`
}

// Outbound payloads.

type IncomingRequestData struct {
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
}

type RequestResultData struct {
	Accepted     bool   `json:"accepted"`
	ReceiverName string `json:"receiverName"`
}

type LeftRoomData struct {
	UserID string `json:"userId"`
	RoomID string `json:"roomId"`
}

type ChatClearedData struct {
	UserID string `json:"userId"`
}
