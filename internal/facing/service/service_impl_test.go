package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shelftrack/shelftrack/internal/facing/domain"
	facingrepository "github.com/shelftrack/shelftrack/internal/facing/repository"
	"github.com/shelftrack/shelftrack/internal/identity"
	productdomain "github.com/shelftrack/shelftrack/internal/product/domain"
	storedomain "github.com/shelftrack/shelftrack/internal/store/domain"
	storerepository "github.com/shelftrack/shelftrack/internal/store/repository"
	userdomain "github.com/shelftrack/shelftrack/internal/user/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type fixture struct {
	svc        domain.Service
	db         *gorm.DB
	node       *snowflake.Node
	admin      identity.Identity
	rep        identity.Identity
	other      identity.Identity
	ownStore   storedomain.Store
	otherStore storedomain.Store
	vegeta     productdomain.Product
	lino       productdomain.Product
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userdomain.User{},
		&storedomain.Store{},
		&productdomain.Product{},
		&domain.FacingRecord{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	f := &fixture{db: db, node: node}

	admin := userdomain.User{ID: node.Generate().Int64(), Username: "admin", DisplayName: "Admin", Role: identity.RoleAdmin}
	rep := userdomain.User{ID: node.Generate().Int64(), Username: "ivana", DisplayName: "Ivana Horvat", Role: identity.RoleEmployee}
	other := userdomain.User{ID: node.Generate().Int64(), Username: "marko", DisplayName: "Marko Babic", Role: identity.RoleEmployee}
	require.NoError(t, db.Create(&[]userdomain.User{admin, rep, other}).Error)

	f.admin = identity.Identity{UserID: admin.ID, Role: identity.RoleAdmin}
	f.rep = identity.Identity{UserID: rep.ID, Role: identity.RoleEmployee}
	f.other = identity.Identity{UserID: other.ID, Role: identity.RoleEmployee}

	f.ownStore = storedomain.Store{ID: node.Generate().Int64(), StoreName: "Konzum Centar", UserID: &rep.ID}
	f.otherStore = storedomain.Store{ID: node.Generate().Int64(), StoreName: "Plodine Split", UserID: &other.ID}
	require.NoError(t, db.Create(&[]storedomain.Store{f.ownStore, f.otherStore}).Error)

	f.vegeta = productdomain.Product{ID: node.Generate().Int64(), Name: "Vegeta Original 250g", Category: "food"}
	f.lino = productdomain.Product{ID: node.Generate().Int64(), Name: "Lino Lada Gold 350g", Category: "sweets"}
	require.NoError(t, db.Create(&[]productdomain.Product{f.vegeta, f.lino}).Error)

	f.svc = New(Params{
		DB:        db,
		Log:       zaptest.NewLogger(t),
		GenID:     node,
		Repo:      facingrepository.Provide(),
		StoreRepo: storerepository.Provide(),
	})
	return f
}

func (f *fixture) entry(ident identity.Identity, store storedomain.Store, product productdomain.Product, count int) domain.Entry {
	return domain.Entry{
		UserID:       int64Ptr(ident.UserID),
		StoreID:      int64Ptr(store.ID),
		ProductID:    int64Ptr(product.ID),
		Category:     product.Category,
		FacingsCount: intPtr(count),
	}
}

func (f *fixture) countRows(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&domain.FacingRecord{}).Count(&count).Error)
	return count
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestBatchCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts all entries under one batch id", func(t *testing.T) {
		f := setup(t)
		entries := []domain.Entry{
			f.entry(f.rep, f.ownStore, f.vegeta, 4),
			f.entry(f.rep, f.ownStore, f.lino, 0),
		}

		result, err := f.svc.BatchCreate(ctx, f.rep, entries)
		require.NoError(t, err)
		assert.Equal(t, 2, result.AffectedRows)
		assert.NotEmpty(t, result.BatchID)

		var records []domain.FacingRecord
		require.NoError(t, f.db.Order("id").Find(&records).Error)
		require.Len(t, records, 2)
		for _, record := range records {
			require.NotNil(t, record.BatchID)
			assert.Equal(t, result.BatchID, *record.BatchID)
			assert.Equal(t, f.rep.UserID, record.UserID)
			assert.False(t, record.ReportDate.IsZero())
		}
		assert.Equal(t, 4, records[0].FacingsCount)
		assert.Equal(t, 0, records[1].FacingsCount)
	})

	t.Run("each submission gets a fresh batch id", func(t *testing.T) {
		f := setup(t)
		first, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{f.entry(f.rep, f.ownStore, f.vegeta, 1)})
		require.NoError(t, err)
		second, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{f.entry(f.rep, f.ownStore, f.vegeta, 2)})
		require.NoError(t, err)
		assert.NotEqual(t, first.BatchID, second.BatchID)
	})

	t.Run("rejects a zero identity", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.BatchCreate(ctx, identity.Identity{}, []domain.Entry{f.entry(f.rep, f.ownStore, f.vegeta, 1)})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.BatchCreate(ctx, f.rep, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyBatch)
	})

	t.Run("rejects entries submitted for another user", func(t *testing.T) {
		f := setup(t)
		entry := f.entry(f.rep, f.ownStore, f.vegeta, 3)
		entry.UserID = int64Ptr(f.other.UserID)

		_, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{entry})
		assert.ErrorIs(t, err, domain.ErrUserMismatch)
		assert.Zero(t, f.countRows(t))
	})

	t.Run("rejects an unknown store", func(t *testing.T) {
		f := setup(t)
		entry := f.entry(f.rep, f.ownStore, f.vegeta, 3)
		entry.StoreID = int64Ptr(f.node.Generate().Int64())

		_, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{entry})
		assert.ErrorIs(t, err, domain.ErrStoreNotFound)
		assert.Zero(t, f.countRows(t))
	})

	t.Run("treats an absent store id as unknown", func(t *testing.T) {
		f := setup(t)
		entry := f.entry(f.rep, f.ownStore, f.vegeta, 3)
		entry.StoreID = nil

		_, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{entry})
		assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	})

	t.Run("rejects a store assigned to someone else", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{f.entry(f.rep, f.otherStore, f.vegeta, 3)})
		assert.ErrorIs(t, err, domain.ErrStoreForbidden)
		assert.Zero(t, f.countRows(t))
	})

	t.Run("admins may report against any store", func(t *testing.T) {
		f := setup(t)
		result, err := f.svc.BatchCreate(ctx, f.admin, []domain.Entry{f.entry(f.admin, f.otherStore, f.vegeta, 5)})
		require.NoError(t, err)
		assert.Equal(t, 1, result.AffectedRows)
	})

	t.Run("rejects an entry missing its count", func(t *testing.T) {
		f := setup(t)
		entry := f.entry(f.rep, f.ownStore, f.vegeta, 3)
		entry.FacingsCount = nil

		_, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{entry})
		assert.ErrorIs(t, err, domain.ErrIncompleteEntry)
	})

	t.Run("rejects an entry missing its category", func(t *testing.T) {
		f := setup(t)
		entry := f.entry(f.rep, f.ownStore, f.vegeta, 3)
		entry.Category = "  "

		_, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{entry})
		assert.ErrorIs(t, err, domain.ErrIncompleteEntry)
	})

	t.Run("one bad entry rolls back the whole batch", func(t *testing.T) {
		f := setup(t)
		bad := f.entry(f.rep, f.ownStore, f.lino, 2)
		bad.FacingsCount = nil

		_, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{
			f.entry(f.rep, f.ownStore, f.vegeta, 3),
			bad,
		})
		assert.ErrorIs(t, err, domain.ErrIncompleteEntry)
		assert.Zero(t, f.countRows(t))
	})
}

func TestBatchUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only the count of matching rows", func(t *testing.T) {
		f := setup(t)
		created, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{
			f.entry(f.rep, f.ownStore, f.vegeta, 3),
			f.entry(f.rep, f.ownStore, f.lino, 1),
		})
		require.NoError(t, err)

		err = f.svc.BatchUpdate(ctx, f.rep, created.BatchID, []domain.UpdateEntry{
			{UserID: int64Ptr(f.rep.UserID), ProductID: int64Ptr(f.vegeta.ID), FacingsCount: intPtr(7)},
		})
		require.NoError(t, err)

		var records []domain.FacingRecord
		require.NoError(t, f.db.Order("id").Find(&records).Error)
		require.Len(t, records, 2)
		assert.Equal(t, 7, records[0].FacingsCount)
		assert.Equal(t, 1, records[1].FacingsCount)
	})

	t.Run("a non-matching row is a silent no-op", func(t *testing.T) {
		f := setup(t)
		created, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{f.entry(f.rep, f.ownStore, f.vegeta, 3)})
		require.NoError(t, err)

		err = f.svc.BatchUpdate(ctx, f.rep, created.BatchID, []domain.UpdateEntry{
			{UserID: int64Ptr(f.rep.UserID), ProductID: int64Ptr(f.lino.ID), FacingsCount: intPtr(9)},
		})
		assert.NoError(t, err)
	})

	t.Run("cannot reach another user's rows", func(t *testing.T) {
		f := setup(t)
		created, err := f.svc.BatchCreate(ctx, f.other, []domain.Entry{f.entry(f.other, f.otherStore, f.vegeta, 3)})
		require.NoError(t, err)

		err = f.svc.BatchUpdate(ctx, f.rep, created.BatchID, []domain.UpdateEntry{
			{UserID: int64Ptr(f.rep.UserID), ProductID: int64Ptr(f.vegeta.ID), FacingsCount: intPtr(9)},
		})
		require.NoError(t, err)

		var record domain.FacingRecord
		require.NoError(t, f.db.First(&record).Error)
		assert.Equal(t, 3, record.FacingsCount)
	})

	t.Run("rejects a missing batch id", func(t *testing.T) {
		f := setup(t)
		err := f.svc.BatchUpdate(ctx, f.rep, " ", []domain.UpdateEntry{
			{UserID: int64Ptr(f.rep.UserID), ProductID: int64Ptr(f.vegeta.ID), FacingsCount: intPtr(1)},
		})
		assert.ErrorIs(t, err, domain.ErrMissingBatchID)
	})

	t.Run("rejects entries submitted for another user", func(t *testing.T) {
		f := setup(t)
		err := f.svc.BatchUpdate(ctx, f.rep, "some-batch", []domain.UpdateEntry{
			{UserID: int64Ptr(f.other.UserID), ProductID: int64Ptr(f.vegeta.ID), FacingsCount: intPtr(1)},
		})
		assert.ErrorIs(t, err, domain.ErrUserMismatch)
	})
}

func TestBatchDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only the caller's rows", func(t *testing.T) {
		f := setup(t)
		created, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{
			f.entry(f.rep, f.ownStore, f.vegeta, 3),
			f.entry(f.rep, f.ownStore, f.lino, 1),
		})
		require.NoError(t, err)

		require.NoError(t, f.svc.BatchDelete(ctx, f.rep, created.BatchID))
		assert.Zero(t, f.countRows(t))
	})

	t.Run("admins are still scoped to their own rows", func(t *testing.T) {
		f := setup(t)
		created, err := f.svc.BatchCreate(ctx, f.other, []domain.Entry{f.entry(f.other, f.otherStore, f.vegeta, 3)})
		require.NoError(t, err)

		err = f.svc.BatchDelete(ctx, f.admin, created.BatchID)
		assert.ErrorIs(t, err, domain.ErrBatchNotFound)
		assert.Equal(t, int64(1), f.countRows(t))
	})

	t.Run("reports not found when nothing matches", func(t *testing.T) {
		f := setup(t)
		err := f.svc.BatchDelete(ctx, f.rep, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrBatchNotFound)
	})

	t.Run("rejects a missing batch id", func(t *testing.T) {
		f := setup(t)
		err := f.svc.BatchDelete(ctx, f.rep, "")
		assert.ErrorIs(t, err, domain.ErrMissingBatchID)
	})
}

func TestListUserBatches(t *testing.T) {
	ctx := context.Background()

	t.Run("groups a batch per store and category", func(t *testing.T) {
		f := setup(t)
		created, err := f.svc.BatchCreate(ctx, f.admin, []domain.Entry{
			f.entry(f.admin, f.ownStore, f.vegeta, 2),
			f.entry(f.admin, f.otherStore, f.vegeta, 4),
		})
		require.NoError(t, err)

		summaries, err := f.svc.ListUserBatches(ctx, f.admin)
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		for _, summary := range summaries {
			assert.Equal(t, created.BatchID, summary.BatchID)
			assert.Equal(t, int64(1), summary.ProductCount)
			assert.NotEmpty(t, summary.StoreName)
		}
	})

	t.Run("counts products within one group", func(t *testing.T) {
		f := setup(t)
		// Same store and category so both rows collapse into one summary.
		_, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{
			f.entry(f.rep, f.ownStore, f.vegeta, 2),
			{
				UserID:       int64Ptr(f.rep.UserID),
				StoreID:      int64Ptr(f.ownStore.ID),
				ProductID:    int64Ptr(f.lino.ID),
				Category:     "food",
				FacingsCount: intPtr(1),
			},
		})
		require.NoError(t, err)

		summaries, err := f.svc.ListUserBatches(ctx, f.rep)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, int64(2), summaries[0].ProductCount)
	})

	t.Run("orders summaries most recent first", func(t *testing.T) {
		f := setup(t)
		older := uuid.NewString()
		newer := uuid.NewString()
		now := time.Now().UTC()

		require.NoError(t, f.db.Create(&[]domain.FacingRecord{
			{
				ID:           f.node.Generate().Int64(),
				UserID:       f.rep.UserID,
				StoreID:      f.ownStore.ID,
				ProductID:    f.vegeta.ID,
				Category:     "food",
				FacingsCount: 1,
				BatchID:      &older,
				ReportDate:   now.Add(-48 * time.Hour),
			},
			{
				ID:           f.node.Generate().Int64(),
				UserID:       f.rep.UserID,
				StoreID:      f.ownStore.ID,
				ProductID:    f.lino.ID,
				Category:     "sweets",
				FacingsCount: 2,
				BatchID:      &newer,
				ReportDate:   now,
			},
		}).Error)

		summaries, err := f.svc.ListUserBatches(ctx, f.rep)
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, newer, summaries[0].BatchID)
		assert.Equal(t, older, summaries[1].BatchID)
	})

	t.Run("excludes other users and legacy rows", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.BatchCreate(ctx, f.other, []domain.Entry{f.entry(f.other, f.otherStore, f.vegeta, 1)})
		require.NoError(t, err)

		// Legacy row without a batch id never appears in summaries.
		require.NoError(t, f.db.Create(&domain.FacingRecord{
			ID:           f.node.Generate().Int64(),
			UserID:       f.rep.UserID,
			StoreID:      f.ownStore.ID,
			ProductID:    f.vegeta.ID,
			Category:     "food",
			FacingsCount: 2,
			ReportDate:   time.Now().UTC(),
		}).Error)

		summaries, err := f.svc.ListUserBatches(ctx, f.rep)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("rejects a zero identity", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.ListUserBatches(ctx, identity.Identity{})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestGetBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("joins submitter, store and product names", func(t *testing.T) {
		f := setup(t)
		created, err := f.svc.BatchCreate(ctx, f.rep, []domain.Entry{
			f.entry(f.rep, f.ownStore, f.vegeta, 3),
			f.entry(f.rep, f.ownStore, f.lino, 1),
		})
		require.NoError(t, err)

		rows, err := f.svc.GetBatch(ctx, created.BatchID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Ivana Horvat", rows[0].SubmittedBy)
		assert.Equal(t, "Konzum Centar", rows[0].StoreName)
		assert.Equal(t, "Vegeta Original 250g", rows[0].ProductName)
		assert.Equal(t, created.BatchID, rows[0].BatchID)
	})

	t.Run("rejects a missing batch id", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.GetBatch(ctx, "")
		assert.ErrorIs(t, err, domain.ErrMissingBatchID)
	})

	t.Run("reports not found for an unknown batch", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.GetBatch(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrBatchNotFound)
	})
}
