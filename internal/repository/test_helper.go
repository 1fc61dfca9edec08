package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// GenerateUniquePrefix returns a title prefix unique enough to isolate
// parallel test runs against a shared database.
func GenerateUniquePrefix() string {
	return uuid.New().String()[:8] + "_" + time.Now().Format("150405")
}

// SetupTestDB connects to the local test database, skipping the test when
// it is not reachable.
func SetupTestDB(t *testing.T) (*sqlx.DB, string) {
	t.Helper()

	dsn := "host=localhost port=5432 user=postgres password=postgres dbname=roomadmin_test sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Skipping test, could not connect to test database: %v", err)
	}

	return db, GenerateUniquePrefix()
}

// CleanupTestDataByPrefix removes only the rooms created by this test
func CleanupTestDataByPrefix(t *testing.T, db *sqlx.DB, prefix string) {
	t.Helper()

	ctx := context.Background()
	_, _ = db.ExecContext(ctx, "DELETE FROM rooms WHERE room_title LIKE $1", prefix+"%")
}
