package postgres

import (
	"os"
	"testing"

	"github.com/devlink/devlink/internal/store"
	"github.com/devlink/devlink/internal/store/storetest"
)

func makePGStore(t *testing.T) store.Store {
	t.Helper()
	dsn := os.Getenv("DEVLINK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("DEVLINK_TEST_POSTGRES_DSN not set; skipping postgres store integration test")
	}
	if err := RunMigrations(dsn); err != nil {
		t.Fatalf("postgres migrate: %v", err)
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db)
}

func TestPostgresStore_Compliance(t *testing.T) {
	storetest.Run(t, makePGStore)
}
