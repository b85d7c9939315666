package domain

import (
	"io"

	"github.com/google/uuid"
)

// WorldStore persists the demo world the command set operates on.
type WorldStore interface {
	// AddPlayer creates a player with a fresh id at the spawn point.
	AddPlayer(name string) (Player, error)

	// RemovePlayer deletes a player and its inventory.
	RemovePlayer(id uuid.UUID) error

	// PlayerByName looks a player up by its case-insensitive name.
	PlayerByName(name string) (Player, error)

	// PlayerByID looks a player up by id.
	PlayerByID(id uuid.UUID) (Player, error)

	// Players returns every player ordered by name.
	Players() ([]Player, error)

	// SetOperator grants or revokes operator status.
	SetOperator(id uuid.UUID, operator bool) error

	// MovePlayer sets a player's position.
	MovePlayer(id uuid.UUID, x, y, z float64) error

	// KillPlayer clears the inventory, counts the death and respawns the player.
	KillPlayer(id uuid.UUID) error

	// GiveItem adds count items and returns the new stack size.
	GiveItem(id uuid.UUID, item string, count int) (int, error)

	// Inventory returns a player's items ordered by item name.
	Inventory(id uuid.UUID) ([]InventoryItem, error)

	// Clock returns the world clock.
	Clock() (WorldClock, error)

	// SetDayTime sets the day time, leaving game time untouched.
	SetDayTime(ticks int64) (WorldClock, error)

	// AddTime advances both counters.
	AddTime(ticks int64) (WorldClock, error)

	// Close closes the store connection.
	Close() error
}

// HistoryStore records dispatched command lines.
type HistoryStore interface {
	// Record appends an entry.
	Record(entry HistoryEntry) error

	// History returns entries newest first.
	History(filter HistoryFilter) ([]HistoryEntry, error)

	// ClearHistory deletes all entries and returns how many were removed.
	ClearHistory() (int64, error)
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string

	// Literal styles a literal command token.
	Literal(text string) string

	// Argument styles an argument placeholder or value.
	Argument(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Store   WorldStore
	History HistoryStore
	Config  ConfigProvider
	Logger  Logger
	Output  OutputWriter
	Styler  Styler
}
