package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Store, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Store, error)
}
