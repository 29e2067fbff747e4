package repository

import (
	"context"
	"errors"

	"github.com/shelftrack/shelftrack/internal/facing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.FacingRecord, error) {
	var records []domain.FacingRecord
	err := db.WithContext(ctx).
		Order("report_date desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) BulkInsert(ctx context.Context, db *gorm.DB, records []domain.FacingRecord) error {
	if len(records) == 0 {
		return errors.New("no records to insert")
	}
	return db.WithContext(ctx).Create(&records).Error
}

func (r *repo) UpdateCount(ctx context.Context, db *gorm.DB, batchID string, userID, productID int64, count int) error {
	// Rows matching no criteria are silent no-ops.
	return db.WithContext(ctx).
		Model(&domain.FacingRecord{}).
		Where("batch_id = ? AND product_id = ? AND user_id = ?", batchID, productID, userID).
		Update("facings_count", count).Error
}

func (r *repo) DeleteBatch(ctx context.Context, db *gorm.DB, batchID string, userID int64) (int64, error) {
	res := db.WithContext(ctx).
		Where("batch_id = ? AND user_id = ?", batchID, userID).
		Delete(&domain.FacingRecord{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *repo) SummarizeUserBatches(ctx context.Context, db *gorm.DB, userID int64) ([]domain.BatchSummary, error) {
	var summaries []domain.BatchSummary
	err := db.WithContext(ctx).
		Raw(`SELECT
			pf.batch_id,
			pf.store_id,
			s.store_name,
			pf.category,
			pf.report_date,
			COUNT(*) AS product_count
		FROM podravka_facings pf
		JOIN stores s ON pf.store_id = s.id
		WHERE pf.user_id = ? AND pf.batch_id IS NOT NULL
		GROUP BY pf.batch_id, pf.store_id, s.store_name, pf.category, pf.report_date
		ORDER BY pf.report_date DESC`, userID).
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repo) FindBatchDetail(ctx context.Context, db *gorm.DB, batchID string) ([]domain.BatchDetailRow, error) {
	var rows []domain.BatchDetailRow
	err := db.WithContext(ctx).
		Raw(`SELECT
			pf.id,
			pf.user_id,
			pf.store_id,
			pf.product_id,
			pf.category,
			pf.facings_count,
			pf.batch_id,
			pf.report_date,
			u.display_name AS submitted_by,
			s.store_name,
			p.name AS product_name
		FROM podravka_facings pf
		JOIN users u ON pf.user_id = u.id
		JOIN stores s ON pf.store_id = s.id
		JOIN podravka_products p ON pf.product_id = p.id
		WHERE pf.batch_id = ?
		ORDER BY pf.id`, batchID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
