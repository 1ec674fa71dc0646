package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/moodmate/backend/internal/store"
	"github.com/moodmate/backend/internal/store/storetest"
)

func TestSqliteStoreCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		t.Helper()
		s, err := New(filepath.Join(t.TempDir(), "moodmate.db"))
		if err != nil {
			t.Fatalf("open sqlite store: %v", err)
		}
		return s
	})
}
