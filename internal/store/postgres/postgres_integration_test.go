package postgres

import (
	"os"
	"testing"

	"github.com/moodmate/backend/internal/store"
	"github.com/moodmate/backend/internal/store/storetest"
)

// Requires a migrated database; see migrations/.
func TestPostgresStoreCompliance(t *testing.T) {
	dsn := os.Getenv("MOODMATE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("MOODMATE_TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}
	storetest.Run(t, func(t *testing.T) store.Store {
		t.Helper()
		db, err := Open(dsn)
		if err != nil {
			t.Fatalf("open postgres: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		return NewWithDB(db)
	})
}
