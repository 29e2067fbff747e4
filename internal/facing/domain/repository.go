package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]FacingRecord, error)
	BulkInsert(ctx context.Context, db *gorm.DB, records []FacingRecord) error
	UpdateCount(ctx context.Context, db *gorm.DB, batchID string, userID, productID int64, count int) error
	DeleteBatch(ctx context.Context, db *gorm.DB, batchID string, userID int64) (int64, error)
	SummarizeUserBatches(ctx context.Context, db *gorm.DB, userID int64) ([]BatchSummary, error)
	FindBatchDetail(ctx context.Context, db *gorm.DB, batchID string) ([]BatchDetailRow, error)
}
