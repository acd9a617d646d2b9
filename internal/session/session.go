// Package session resolves bearer tokens to users. Authentication
// itself (sign-up, passwords, OAuth) lives outside this app; the API
// only needs to know who is calling for ownership checks and author
// attribution.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/youruser/pengdeck/internal/store"
)

// User is the authenticated caller as the rest of the app sees it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CurrentUser resolves a session token. An unknown or expired token
// yields (nil, nil): not an error, just no caller.
func (s *Store) CurrentUser(token string) (*User, error) {
	if token == "" {
		return nil, nil
	}
	var sess store.Session
	err := s.db.Preload("User").Where("token = ?", token).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}
	return &User{ID: sess.User.ID, Name: sess.User.Name, Email: sess.User.Email}, nil
}

// Create issues a new session token for a user.
func (s *Store) Create(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	sess := store.Session{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return "", err
	}
	return sess.Token, nil
}
