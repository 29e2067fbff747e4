package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Store is directory reference data: the retail location facings are
// reported against, optionally owned by the salesperson assigned to it.
type Store struct {
	ID        int64             `json:"store_id" gorm:"primaryKey"`
	StoreName string            `json:"store_name" gorm:"type:text;not null"`
	UserID    *int64            `json:"user_id" gorm:"index"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"not null"`
}

func (Store) TableName() string { return "stores" }

// OwnedBy reports whether the store is assigned to the given user.
func (s *Store) OwnedBy(userID int64) bool {
	return s.UserID != nil && *s.UserID == userID
}

var (
	ErrNotFound  = errors.New("store_not_found")
	ErrInvalidID = errors.New("invalid_store_id")
)
