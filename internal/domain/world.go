package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Ticks in one in-game day.
const TicksPerDay = 24000

// Spawn point players return to when killed.
const (
	SpawnX = 0.0
	SpawnY = 64.0
	SpawnZ = 0.0
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")
)

// Player is a participant of the demo world.
type Player struct {
	ID       uuid.UUID
	Name     string
	Operator bool
	X, Y, Z  float64
	Deaths   int
	JoinedAt time.Time
}

// InventoryItem is a stack of one item held by a player.
type InventoryItem struct {
	PlayerID uuid.UUID
	Item     string
	Count    int
}

// WorldClock holds the two world counters.
// DayTime drives the sun; GameTime only ever moves forward.
type WorldClock struct {
	DayTime  int64
	GameTime int64
}

// TimeOfDay returns the position within the current day.
func (c WorldClock) TimeOfDay() int64 {
	return c.DayTime % TicksPerDay
}

// Day returns the number of whole days elapsed.
func (c WorldClock) Day() int64 {
	return c.DayTime / TicksPerDay
}

// Named times accepted by `time set`.
var NamedTimes = map[string]int64{
	"day":      1000,
	"noon":     6000,
	"night":    13000,
	"midnight": 18000,
}

// HistoryEntry records one dispatched command line.
type HistoryEntry struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Line    string    `json:"line" yaml:"line"`
	Source  string    `json:"source" yaml:"source"`
	Success bool      `json:"success" yaml:"success"`
	Result  int       `json:"result" yaml:"result"`
	Error   string    `json:"error,omitempty" yaml:"error,omitempty"`
	At      time.Time `json:"at" yaml:"at"`
}

// HistoryFilter narrows history queries.
type HistoryFilter struct {
	Source string
	Since  *time.Time
	Limit  int
}
