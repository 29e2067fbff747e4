package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/shelftrack/shelftrack/internal/facing/domain"
	"github.com/shelftrack/shelftrack/internal/identity"
	storedomain "github.com/shelftrack/shelftrack/internal/store/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	StoreRepo storedomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	storeRepo storedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("facing.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		storeRepo: p.StoreRepo,
	}
}

func (s *Service) ListAll(ctx context.Context) ([]domain.FacingRecord, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) ListUserBatches(ctx context.Context, ident identity.Identity) ([]domain.BatchSummary, error) {
	if ident.IsZero() {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.SummarizeUserBatches(ctx, s.db, ident.UserID)
}

// BatchCreate validates every entry against the directory and the caller,
// then inserts all rows under one freshly generated batch identifier.
// Validation and the bulk insert share one transaction so a batch is either
// fully written or not written at all, and store ownership cannot change
// between the lookup and the insert.
func (s *Service) BatchCreate(ctx context.Context, ident identity.Identity, entries []domain.Entry) (*domain.BatchResult, error) {
	if ident.IsZero() {
		return nil, domain.ErrUnauthenticated
	}
	if len(entries) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	batchID := uuid.NewString()
	now := time.Now().UTC()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		records := make([]domain.FacingRecord, 0, len(entries))
		for _, entry := range entries {
			if entry.UserID == nil || *entry.UserID != ident.UserID {
				return domain.ErrUserMismatch
			}

			// Each entry re-queries the directory; no caching across
			// entries within one request.
			store, err := s.storeRepo.FindByID(ctx, tx, derefInt64(entry.StoreID))
			if err != nil {
				return err
			}
			if store == nil {
				return domain.ErrStoreNotFound
			}
			if !store.OwnedBy(ident.UserID) && !ident.IsAdmin() {
				return domain.ErrStoreForbidden
			}

			if derefInt64(entry.StoreID) == 0 ||
				derefInt64(entry.ProductID) == 0 ||
				strings.TrimSpace(entry.Category) == "" ||
				entry.FacingsCount == nil {
				return domain.ErrIncompleteEntry
			}

			records = append(records, domain.FacingRecord{
				ID:           s.genID.Generate().Int64(),
				UserID:       *entry.UserID,
				StoreID:      *entry.StoreID,
				ProductID:    *entry.ProductID,
				Category:     strings.TrimSpace(entry.Category),
				FacingsCount: *entry.FacingsCount,
				BatchID:      &batchID,
				ReportDate:   now,
			})
		}

		return s.repo.BulkInsert(ctx, tx, records)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("facings batch created",
		zap.String("batch_id", batchID),
		zap.Int64("user_id", ident.UserID),
		zap.Int("rows", len(entries)),
	)

	return &domain.BatchResult{
		AffectedRows: len(entries),
		BatchID:      batchID,
		Message:      "facings batch added successfully",
	}, nil
}

// BatchUpdate applies count-only updates to the caller's rows in a batch.
// Entries are validated up front, then each update is dispatched
// concurrently; a row matching no criteria is a silent no-op.
func (s *Service) BatchUpdate(ctx context.Context, ident identity.Identity, batchID string, entries []domain.UpdateEntry) error {
	if ident.IsZero() {
		return domain.ErrUnauthenticated
	}
	if strings.TrimSpace(batchID) == "" {
		return domain.ErrMissingBatchID
	}
	if len(entries) == 0 {
		return domain.ErrEmptyBatch
	}

	for _, entry := range entries {
		if entry.UserID == nil || *entry.UserID != ident.UserID {
			return domain.ErrUserMismatch
		}
		if derefInt64(entry.ProductID) == 0 || entry.FacingsCount == nil {
			return domain.ErrIncompleteEntry
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		productID := *entry.ProductID
		count := *entry.FacingsCount
		g.Go(func() error {
			return s.repo.UpdateCount(gctx, s.db, batchID, ident.UserID, productID, count)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.log.Info("facings batch updated",
		zap.String("batch_id", batchID),
		zap.Int64("user_id", ident.UserID),
		zap.Int("entries", len(entries)),
	)
	return nil
}

// BatchDelete removes the caller's rows for a batch. Deletion is scoped to
// the caller's own rows even for admins.
func (s *Service) BatchDelete(ctx context.Context, ident identity.Identity, batchID string) error {
	if ident.IsZero() {
		return domain.ErrUnauthenticated
	}
	if strings.TrimSpace(batchID) == "" {
		return domain.ErrMissingBatchID
	}

	affected, err := s.repo.DeleteBatch(ctx, s.db, batchID, ident.UserID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBatchNotFound
	}

	s.log.Info("facings batch deleted",
		zap.String("batch_id", batchID),
		zap.Int64("user_id", ident.UserID),
		zap.Int64("rows", affected),
	)
	return nil
}

func (s *Service) GetBatch(ctx context.Context, batchID string) ([]domain.BatchDetailRow, error) {
	if strings.TrimSpace(batchID) == "" {
		return nil, domain.ErrMissingBatchID
	}

	rows, err := s.repo.FindBatchDetail(ctx, s.db, batchID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrBatchNotFound
	}
	return rows, nil
}

func derefInt64(value *int64) int64 {
	if value == nil {
		return 0
	}
	return *value
}
