package migration

import (
	"fmt"

	"github.com/shelftrack/shelftrack/internal/config"
	facingdomain "github.com/shelftrack/shelftrack/internal/facing/domain"
	productdomain "github.com/shelftrack/shelftrack/internal/product/domain"
	"github.com/shelftrack/shelftrack/internal/seed"
	storedomain "github.com/shelftrack/shelftrack/internal/store/domain"
	userdomain "github.com/shelftrack/shelftrack/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Migrate),
)

// Migrate brings the schema up to date on startup and seeds the default
// directory data. Postgres uses the embedded SQL migrations; the other
// dialects fall back to AutoMigrate since the migration files carry
// postgres-specific types.
func Migrate(cfg config.Config, db *gorm.DB, log *zap.Logger) error {
	if cfg.DBType == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get database handle: %w", err)
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}
		log.Info("schema migrations applied", zap.String("dialect", cfg.DBType))
	} else {
		if err := db.AutoMigrate(
			&userdomain.User{},
			&storedomain.Store{},
			&productdomain.Product{},
			&facingdomain.FacingRecord{},
		); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("schema auto-migrated", zap.String("dialect", cfg.DBType))
	}

	return seed.EnsureDefaultData(db)
}
