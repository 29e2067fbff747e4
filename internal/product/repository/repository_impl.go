package repository

import (
	"context"
	"errors"

	"github.com/shelftrack/shelftrack/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, category string) ([]domain.Product, error) {
	stmt := db.WithContext(ctx).Model(&domain.Product{})
	if category != "" {
		stmt = stmt.Where("category = ?", category)
	}

	var products []domain.Product
	err := stmt.Order("name asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
