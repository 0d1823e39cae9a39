package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. Email is the login handle and is
// unique across the system. PasswordHash never leaves the server.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:text;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
	AvatarImage  string `gorm:"type:text" json:"avatarImage"`
}

// BeforeCreate is a GORM hook that assigns a fresh UUID when the record
// does not carry one yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// UserSummary is the wire projection of a User returned by the HTTP API.
type UserSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AvatarImage string `json:"avatarImage"`
}

// Summary strips the credential hash from a User.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		AvatarImage: u.AvatarImage,
	}
}
