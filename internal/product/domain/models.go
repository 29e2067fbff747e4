package domain

import (
	"errors"
	"time"
)

// Product is directory reference data: the company's own catalogue entries
// facings are recorded for.
type Product struct {
	ID          int64     `json:"product_id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Category    string    `json:"category" gorm:"type:varchar(64);not null;index"`
	ProductCode string    `json:"product_code" gorm:"type:varchar(64);not null;default:''"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}

func (Product) TableName() string { return "podravka_products" }

var (
	ErrNotFound  = errors.New("product_not_found")
	ErrInvalidID = errors.New("invalid_product_id")
)
