package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/store"
	"github.com/footprint-tools/brig/internal/testutil"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")

	s, err := store.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.Equal(t, path, s.Path())
	version, err := s.SchemaVersion()
	require.NoError(t, err)
	require.Equal(t, 2, version)

	_, err = s.AddPlayer("alex")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := store.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	p, err := reopened.PlayerByName("alex")
	require.NoError(t, err)
	require.Equal(t, "alex", p.Name)
}

func TestPlayers(t *testing.T) {
	s := testutil.NewTestStore(t)

	alex, err := s.AddPlayer("alex")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, alex.ID)
	require.Equal(t, domain.SpawnY, alex.Y)

	_, err = s.AddPlayer("Alex")
	require.ErrorIs(t, err, domain.ErrPlayerExists, "names are case-insensitive")

	_, err = s.AddPlayer("steve")
	require.NoError(t, err)

	byName, err := s.PlayerByName("ALEX")
	require.NoError(t, err)
	require.Equal(t, alex.ID, byName.ID)
	require.WithinDuration(t, alex.JoinedAt, byName.JoinedAt, time.Millisecond)

	byID, err := s.PlayerByID(alex.ID)
	require.NoError(t, err)
	require.Equal(t, "alex", byID.Name)

	_, err = s.PlayerByName("notch")
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)

	all, err := s.Players()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "alex", all[0].Name)
	require.Equal(t, "steve", all[1].Name)
}

func TestSetOperatorAndMove(t *testing.T) {
	s := testutil.NewTestStore(t)
	p := testutil.SeedPlayers(t, s, "alex")[0]

	require.NoError(t, s.SetOperator(p.ID, true))
	require.NoError(t, s.MovePlayer(p.ID, 1.5, 70, -3))

	got, err := s.PlayerByID(p.ID)
	require.NoError(t, err)
	require.True(t, got.Operator)
	require.Equal(t, 1.5, got.X)
	require.Equal(t, 70.0, got.Y)
	require.Equal(t, -3.0, got.Z)

	require.ErrorIs(t, s.SetOperator(uuid.New(), true), domain.ErrPlayerNotFound)
	require.ErrorIs(t, s.MovePlayer(uuid.New(), 0, 0, 0), domain.ErrPlayerNotFound)
}

func TestInventory(t *testing.T) {
	s := testutil.NewTestStore(t)
	p := testutil.SeedPlayers(t, s, "alex")[0]

	total, err := s.GiveItem(p.ID, "Diamond", 3)
	require.NoError(t, err)
	require.Equal(t, 3, total)

	total, err = s.GiveItem(p.ID, "diamond", 5)
	require.NoError(t, err)
	require.Equal(t, 8, total, "stacks merge case-insensitively")

	_, err = s.GiveItem(p.ID, "apple", 1)
	require.NoError(t, err)

	items, err := s.Inventory(p.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.InventoryItem{
		{PlayerID: p.ID, Item: "apple", Count: 1},
		{PlayerID: p.ID, Item: "diamond", Count: 8},
	}, items)

	_, err = s.GiveItem(p.ID, "apple", 0)
	require.Error(t, err)

	_, err = s.GiveItem(uuid.New(), "apple", 1)
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestKillPlayer(t *testing.T) {
	s := testutil.NewTestStore(t)
	p := testutil.SeedPlayers(t, s, "alex")[0]

	require.NoError(t, s.MovePlayer(p.ID, 100, 20, 100))
	_, err := s.GiveItem(p.ID, "dirt", 10)
	require.NoError(t, err)

	require.NoError(t, s.KillPlayer(p.ID))

	got, err := s.PlayerByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Deaths)
	require.Equal(t, domain.SpawnX, got.X)
	require.Equal(t, domain.SpawnY, got.Y)

	items, err := s.Inventory(p.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	require.ErrorIs(t, s.KillPlayer(uuid.New()), domain.ErrPlayerNotFound)
}

func TestRemovePlayer(t *testing.T) {
	s := testutil.NewTestStore(t)
	p := testutil.SeedPlayers(t, s, "alex")[0]
	_, err := s.GiveItem(p.ID, "dirt", 1)
	require.NoError(t, err)

	require.NoError(t, s.RemovePlayer(p.ID))
	_, err = s.PlayerByID(p.ID)
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)

	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM inventory`).Scan(&count))
	require.Zero(t, count)

	require.ErrorIs(t, s.RemovePlayer(p.ID), domain.ErrPlayerNotFound)
}

func TestClock(t *testing.T) {
	s := testutil.NewTestStore(t)

	c, err := s.Clock()
	require.NoError(t, err)
	require.Equal(t, domain.WorldClock{}, c)

	c, err = s.AddTime(30000)
	require.NoError(t, err)
	require.Equal(t, domain.WorldClock{DayTime: 30000, GameTime: 30000}, c)
	require.Equal(t, int64(6000), c.TimeOfDay())
	require.Equal(t, int64(1), c.Day())

	c, err = s.SetDayTime(1000)
	require.NoError(t, err)
	require.Equal(t, domain.WorldClock{DayTime: 1000, GameTime: 30000}, c)

	got, err := s.Clock()
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestHistory(t *testing.T) {
	s := testutil.NewTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []domain.HistoryEntry{
		{Line: "time set day", Source: "Console", Success: true, Result: 1, At: base},
		{Line: "say hi", Source: "alex", Success: true, Result: 1, At: base.Add(time.Minute)},
		{Line: "tp nobody", Source: "alex", Success: false, Error: "Unknown argument", At: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, s.Record(e))
	}

	all, err := s.History(domain.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "tp nobody", all[0].Line, "newest first")
	require.False(t, all[0].Success)
	require.Equal(t, "Unknown argument", all[0].Error)
	require.NotEqual(t, uuid.Nil, all[0].ID)
	require.True(t, all[2].At.Equal(base))

	limited, err := s.History(domain.HistoryFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)

	bySource, err := s.History(domain.HistoryFilter{Source: "alex"})
	require.NoError(t, err)
	require.Len(t, bySource, 2)

	since := base.Add(30 * time.Second)
	recent, err := s.History(domain.HistoryFilter{Since: &since})
	require.NoError(t, err)
	require.Len(t, recent, 2)

	n, err := s.ClearHistory()
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	all, err = s.History(domain.HistoryFilter{})
	require.NoError(t, err)
	require.Empty(t, all)
}
