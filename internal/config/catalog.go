package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Catalog is the merchandising category catalog served to clients. It is
// reference data only; batch validation checks category presence, not
// membership.
type Catalog struct {
	Categories []string `mapstructure:"categories"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []string{"food", "fridge", "sweets", "drinks"},
	}
}

type CatalogHolder struct {
	current atomic.Value // holds Catalog
}

// NewCatalogHolder reads catalog.yml and keeps it hot-reloaded on change.
func NewCatalogHolder() (*CatalogHolder, error) {
	v := viper.New()

	v.SetConfigName("catalog")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/shelftrack/config")
	v.AddConfigPath("/etc/shelftrack")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SHELFTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultCatalog()
		v.SetDefault("catalog.categories", defaults.Categories)
	}

	var cfg Catalog
	if err := v.UnmarshalKey("catalog", &cfg); err != nil {
		return nil, err
	}
	if err := validateCatalog(cfg); err != nil {
		return nil, err
	}

	holder := &CatalogHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Catalog
		if err := v.UnmarshalKey("catalog", &updated); err != nil {
			log.Printf("[catalog] reload failed: %v", err)
			return
		}
		if err := validateCatalog(updated); err != nil {
			log.Printf("[catalog] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[catalog] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *CatalogHolder) Get() Catalog {
	return h.current.Load().(Catalog)
}

func (h *CatalogHolder) Categories() []string {
	return h.Get().Categories
}

func validateCatalog(cfg Catalog) error {
	if len(cfg.Categories) == 0 {
		return errors.New("catalog.categories cannot be empty")
	}
	for _, category := range cfg.Categories {
		if strings.TrimSpace(category) == "" {
			return errors.New("catalog.categories cannot contain blank entries")
		}
	}
	return nil
}
