package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shelftrack/shelftrack/internal/identity"
	productdomain "github.com/shelftrack/shelftrack/internal/product/domain"
	storedomain "github.com/shelftrack/shelftrack/internal/store/domain"
	userdomain "github.com/shelftrack/shelftrack/internal/user/domain"
	"gorm.io/gorm"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminDisplay  = "Shelftrack Admin"
)

// EnsureDefaultData seeds the admin user and a starter product catalogue so
// a fresh install has directory data to report facings against.
func EnsureDefaultData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin, err := ensureAdminTx(ctx, tx, node)
		if err != nil {
			return err
		}
		if err := ensureStoresTx(ctx, tx, node, admin.ID); err != nil {
			return err
		}
		return ensureProductsTx(ctx, tx, node)
	})
}

func ensureAdminTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) (userdomain.User, error) {
	var user userdomain.User
	err := tx.WithContext(ctx).Where("username = ?", defaultAdminUsername).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}
	user = userdomain.User{
		ID:          node.Generate().Int64(),
		Username:    defaultAdminUsername,
		DisplayName: defaultAdminDisplay,
		Role:        identity.RoleAdmin,
		CreatedAt:   time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(&user).Error; err != nil {
		return user, err
	}
	return user, nil
}

func ensureStoresTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, ownerID int64) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&storedomain.Store{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	stores := []storedomain.Store{
		{
			ID:        node.Generate().Int64(),
			StoreName: "Konzum Zagreb Centar",
			UserID:    &ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        node.Generate().Int64(),
			StoreName: "Plodine Split",
			UserID:    &ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	return tx.WithContext(ctx).Create(&stores).Error
}

func ensureProductsTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&productdomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	products := []productdomain.Product{
		{ID: node.Generate().Int64(), Name: "Vegeta Original 250g", Category: "food", ProductCode: "VG-250", CreatedAt: now},
		{ID: node.Generate().Int64(), Name: "Lino Lada Gold 350g", Category: "sweets", ProductCode: "LL-350", CreatedAt: now},
		{ID: node.Generate().Int64(), Name: "Dolcela Pudding Vanilla", Category: "fridge", ProductCode: "DP-VAN", CreatedAt: now},
		{ID: node.Generate().Int64(), Name: "Studena Mineral Water 1.5L", Category: "drinks", ProductCode: "SW-150", CreatedAt: now},
	}
	return tx.WithContext(ctx).Create(&products).Error
}
