package repository

import (
	"context"
	"errors"

	"github.com/shelftrack/shelftrack/internal/store/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Store, error) {
	var store domain.Store
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Store, error) {
	var stores []domain.Store
	err := db.WithContext(ctx).
		Order("store_name asc").
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}
