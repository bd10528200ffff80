// Package factory wires the configured store driver.
package factory

import (
	"fmt"

	"github.com/devlink/devlink/internal/config"
	"github.com/devlink/devlink/internal/store"
	"github.com/devlink/devlink/internal/store/memstore"
	"github.com/devlink/devlink/internal/store/postgres"
)

// NewStore selects the store adapter based on cfg.StoreDriver. The
// postgres driver runs pending migrations before returning.
func NewStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.RunMigrations(cfg.PostgresDSN); err != nil {
			_ = db.Close()
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	case "memory":
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}
}
