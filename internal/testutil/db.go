package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/store"
	"github.com/footprint-tools/brig/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedPlayers adds players by name and returns them in the given order.
func SeedPlayers(t *testing.T, s domain.WorldStore, names ...string) []domain.Player {
	t.Helper()

	out := make([]domain.Player, 0, len(names))
	for _, name := range names {
		p, err := s.AddPlayer(name)
		require.NoError(t, err, "failed to seed player %q", name)
		out = append(out, p)
	}
	return out
}
