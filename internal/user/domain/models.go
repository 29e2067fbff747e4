package domain

import "time"

type User struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName string    `json:"display_name" gorm:"type:varchar(255);not null;default:''"`
	Role        string    `json:"role" gorm:"type:varchar(32);not null;default:'employee'"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}

func (User) TableName() string { return "users" }
