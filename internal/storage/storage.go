package storage

import (
	"chatterbox/backend/internal/models"
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// busPrefix namespaces event-bus channels inside Redis pub/sub.
const busPrefix = "chan:"

type Storage interface {
	SaveUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)

	SaveRoom(room *models.Room) error
	GetRoomByID(roomID string) (*models.Room, error)
	GetRoomsForUser(userID string) ([]models.Room, error)
	RemoveRoomMember(roomID, userID string) (*models.Room, error)

	SaveMessage(msg *models.Message) error
	DeleteConversation(userID, targetID string) error

	PublishEvent(channel string, env models.EventEnvelope) error
	SubscribeEvents() *redis.PubSub
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveUser persists a user record in PostgreSQL.
func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// GetUserByID returns the user with the given id, or nil without error when
// no such record exists.
func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get user %s: %v", id, err)
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns the user with the given login email, or nil without
// error when no such record exists.
func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "email = ?", email).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get user by email: %v", err)
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every registered user.
func (s *Service) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		log.Printf("ERROR: Failed to list users: %v", err)
		return nil, err
	}
	return users, nil
}

// SaveRoom persists a room record in PostgreSQL.
func (s *Service) SaveRoom(room *models.Room) error {
	return s.DB.Save(room).Error
}

// GetRoomByID returns the room with the given id, or nil without error when
// no such record exists.
func (s *Service) GetRoomByID(roomID string) (*models.Room, error) {
	var room models.Room
	err := s.DB.First(&room, "id = ?", roomID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get room %s: %v", roomID, err)
		return nil, err
	}
	return &room, nil
}

// GetRoomsForUser returns every room whose member set contains the user.
// It is the sole source of truth for which room channels a reconnecting
// session subscribes to.
func (s *Service) GetRoomsForUser(userID string) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("? = ANY(members)", userID).Find(&rooms).Error; err != nil {
		log.Printf("ERROR: Failed to list rooms for user %s: %v", userID, err)
		return nil, err
	}
	return rooms, nil
}

// RemoveRoomMember drops the user from the room's member and admin sets.
// An unknown room is a no-op, reported as a nil room without error.
func (s *Service) RemoveRoomMember(roomID, userID string) (*models.Room, error) {
	room, err := s.GetRoomByID(roomID)
	if room == nil || err != nil {
		return nil, err
	}

	room.Members = pq.StringArray(lo.Without([]string(room.Members), userID))
	room.Admins = pq.StringArray(lo.Without([]string(room.Admins), userID))

	if err := s.DB.Save(room).Error; err != nil {
		log.Printf("ERROR: Failed to update members of room %s: %v", roomID, err)
		return nil, err
	}
	return room, nil
}

// SaveMessage appends a message to the log. The CreatedAt timestamp is
// assigned here, at persistence time.
func (s *Service) SaveMessage(msg *models.Message) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save message for %s: %v", msg.TargetID, err)
		return err
	}
	return nil
}

// DeleteConversation removes every direct message between the unordered pair
// {userID, targetID}, in either direction. Room messages are untouched.
func (s *Service) DeleteConversation(userID, targetID string) error {
	err := s.DB.Unscoped().
		Where("is_room = ?", false).
		Where("(sender_id = ? AND target_id = ?) OR (sender_id = ? AND target_id = ?)",
			userID, targetID, targetID, userID).
		Delete(&models.Message{}).Error
	if err != nil {
		log.Printf("ERROR: Failed to delete conversation %s/%s: %v", userID, targetID, err)
	}
	return err
}

// PublishEvent publishes an event envelope on the channel's bus topic.
func (s *Service) PublishEvent(channel string, env models.EventEnvelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return s.Redis.Publish(s.Ctx, busPrefix+channel, payload).Err()
}

// SubscribeEvents subscribes to every bus topic.
func (s *Service) SubscribeEvents() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, busPrefix+"*")
}
