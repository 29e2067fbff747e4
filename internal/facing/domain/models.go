package domain

import (
	"errors"
	"time"
)

// FacingRecord is one observed shelf-presence count for a product at a
// store. Rows created through batch submission share a batch_id; legacy
// rows may carry none. Column types must be accepted by every supported
// dialect's AutoMigrate; the postgres migration declares batch_id as uuid.
type FacingRecord struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	UserID       int64     `json:"user_id" gorm:"not null;index"`
	StoreID      int64     `json:"store_id" gorm:"not null;index"`
	ProductID    int64     `json:"product_id" gorm:"not null"`
	Category     string    `json:"category" gorm:"type:varchar(64);not null"`
	FacingsCount int       `json:"facings_count" gorm:"not null"`
	BatchID      *string   `json:"batch_id" gorm:"type:varchar(36);index"`
	ReportDate   time.Time `json:"report_date" gorm:"not null"`
}

func (FacingRecord) TableName() string { return "podravka_facings" }

// Entry is one submitted facing in a batch create request. Identifier and
// count fields are pointers so an absent field is distinguishable from a
// zero value: a count of zero is a valid "not found on shelf" observation.
type Entry struct {
	UserID       *int64 `json:"user_id"`
	StoreID      *int64 `json:"store_id"`
	ProductID    *int64 `json:"product_id"`
	Category     string `json:"category"`
	FacingsCount *int   `json:"facings_count"`
}

// UpdateEntry adjusts the count of one row inside an existing batch.
type UpdateEntry struct {
	UserID       *int64 `json:"user_id"`
	ProductID    *int64 `json:"product_id"`
	FacingsCount *int   `json:"facings_count"`
}

// BatchResult reports the outcome of a batch create.
type BatchResult struct {
	AffectedRows int    `json:"affectedRows"`
	BatchID      string `json:"batchId"`
	Message      string `json:"message"`
}

// BatchSummary is one grouped row of a user's submissions. A single batch
// spanning several stores or categories yields one summary per group.
type BatchSummary struct {
	BatchID      string    `json:"batch_id"`
	StoreID      int64     `json:"store_id"`
	StoreName    string    `json:"store_name"`
	Category     string    `json:"category"`
	ReportDate   time.Time `json:"report_date"`
	ProductCount int64     `json:"product_count"`
}

// BatchDetailRow is a facing row joined with submitter, store and product
// names for batch detail views.
type BatchDetailRow struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	StoreID      int64     `json:"store_id"`
	ProductID    int64     `json:"product_id"`
	Category     string    `json:"category"`
	FacingsCount int       `json:"facings_count"`
	BatchID      string    `json:"batch_id"`
	ReportDate   time.Time `json:"report_date"`
	SubmittedBy  string    `json:"user"`
	StoreName    string    `json:"store_name"`
	ProductName  string    `json:"name"`
}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrEmptyBatch      = errors.New("empty_batch")
	ErrMissingBatchID  = errors.New("missing_batch_id")
	ErrUserMismatch    = errors.New("user_mismatch")
	ErrStoreNotFound   = errors.New("store_not_found")
	ErrStoreForbidden  = errors.New("store_forbidden")
	ErrIncompleteEntry = errors.New("incomplete_entry")
	ErrBatchNotFound   = errors.New("batch_not_found")
)
