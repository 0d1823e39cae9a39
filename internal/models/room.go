package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Room kinds.
const (
	RoomKindGroup   = "group"
	RoomKindChannel = "channel"
)

// Room is a named multi-party channel of kind group or channel. The creator
// is always a member and the initial admin. Membership is mutable; a member
// who leaves is also dropped from the admin set.
type Room struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Kind      string         `gorm:"type:text;not null" json:"type"`
	Avatar    string         `gorm:"type:text" json:"avatar"`
	CreatorID string         `gorm:"type:text;not null;index" json:"creator"`
	Members   pq.StringArray `gorm:"type:text[]" json:"members"`
	Admins    pq.StringArray `gorm:"type:text[]" json:"admins"`
	CreatedAt time.Time      `json:"createdAt"`
}

// BeforeCreate assigns a fresh UUID when the record does not carry one yet.
func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

// HasMember reports whether the given user id is in the member set.
func (r *Room) HasMember(userID string) bool {
	for _, m := range r.Members {
		if m == userID {
			return true
		}
	}
	return false
}
