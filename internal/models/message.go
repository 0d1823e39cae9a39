package models

import "gorm.io/gorm"

// Message kinds.
const (
	MessageKindText   = "text"
	MessageKindFile   = "file"
	MessageKindSystem = "system"
)

// Message is an immutable persisted chat message, direct or room. The target
// is a user id or a room id; IsRoom discriminates, since both are opaque ids
// of the same shape. CreatedAt from the embedded gorm.Model is the
// server-assigned timestamp and the only ordering signal clients may rely on.
type Message struct {
	gorm.Model

	SenderID string `gorm:"type:text;not null;index:idx_conversation" json:"sender"`
	TargetID string `gorm:"type:text;not null;index:idx_conversation" json:"receiver"`
	IsRoom   bool   `gorm:"not null" json:"isRoom"`
	Kind     string `gorm:"type:text;not null" json:"type"`
	Text     string `gorm:"type:text" json:"text,omitempty"`
	File     string `gorm:"type:text" json:"file,omitempty"`
}
