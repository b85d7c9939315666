package migrations_test

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	require.Equal(t, "world", all[0].Description)
}

func TestRunIdempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.Run(db))
	v1, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))
	v2, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.Equal(t, v1, v2)
}

func TestPending(t *testing.T) {
	db := openMemory(t)

	all, err := migrations.Load()
	require.NoError(t, err)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)
	require.Len(t, pending, len(all))

	require.NoError(t, migrations.Run(db))

	pending, err = migrations.Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestHistory(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	applied, err := migrations.History(db)
	require.NoError(t, err)

	all, err := migrations.Load()
	require.NoError(t, err)
	require.Len(t, applied, len(all))
	for i, a := range applied {
		require.Equal(t, all[i].Version, a.Version)
		require.False(t, a.AppliedAt.IsZero())
	}
}

func TestTablesCreated(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	for _, table := range []string{"schema_migrations", "players", "inventory", "world_clock", "history"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s not created", table)
	}

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM world_clock").Scan(&count))
	require.Equal(t, 1, count, "clock row seeded")
}

func TestLoad_RejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing description", fstest.MapFS{"sql/01.sql": {Data: []byte("SELECT 1")}}},
		{"non-numeric version", fstest.MapFS{"sql/xx_world.sql": {Data: []byte("SELECT 1")}}},
		{"duplicate version", fstest.MapFS{
			"sql/01_a.sql": {Data: []byte("SELECT 1")},
			"sql/01_b.sql": {Data: []byte("SELECT 1")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := migrations.LoadFS(tt.fsys)
			require.Error(t, err)
		})
	}
}
