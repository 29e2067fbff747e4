package domain

import (
	"context"

	"github.com/shelftrack/shelftrack/internal/identity"
)

type Service interface {
	ListAll(ctx context.Context) ([]FacingRecord, error)
	ListUserBatches(ctx context.Context, ident identity.Identity) ([]BatchSummary, error)
	BatchCreate(ctx context.Context, ident identity.Identity, entries []Entry) (*BatchResult, error)
	BatchUpdate(ctx context.Context, ident identity.Identity, batchID string, entries []UpdateEntry) error
	BatchDelete(ctx context.Context, ident identity.Identity, batchID string) error
	GetBatch(ctx context.Context, batchID string) ([]BatchDetailRow, error)
}
