package factory

import (
	"fmt"

	"github.com/moodmate/backend/internal/config"
	"github.com/moodmate/backend/internal/store"
	"github.com/moodmate/backend/internal/store/postgres"
	"github.com/moodmate/backend/internal/store/sqlite"
)

// NewStore selects the store implementation based on cfg.DBDriver. Postgres
// expects a migrated schema; sqlite bootstraps its own.
func NewStore(cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	case "sqlite":
		return sqlite.New(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
