package config

import (
	"errors"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/footprint-tools/brig/internal/log"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "BRIG_"

// Overrides are configuration values taken from the environment, one per
// user-facing key. last_session is state and has none. Empty fields are
// not set.
type Overrides struct {
	LogLevel        string `env:"LOG_LEVEL"`
	EnableLog       string `env:"ENABLE_LOG"`
	DBPath          string `env:"DB_PATH"`
	Color           string `env:"COLOR"`
	Pager           string `env:"PAGER"`
	Player          string `env:"PLAYER"`
	Theme           string `env:"THEME"`
	SuggestionLimit string `env:"SUGGESTION_LIMIT"`
	HistorySize     string `env:"HISTORY_SIZE"`
	DisplayDate     string `env:"DISPLAY_DATE"`
	DisplayTime     string `env:"DISPLAY_TIME"`

	ColorSuccess string `env:"COLOR_SUCCESS"`
	ColorWarning string `env:"COLOR_WARNING"`
	ColorError   string `env:"COLOR_ERROR"`
	ColorInfo    string `env:"COLOR_INFO"`
	ColorMuted   string `env:"COLOR_MUTED"`
	ColorHeader  string `env:"COLOR_HEADER"`
}

// Values returns the non-empty overrides keyed by config key.
func (o Overrides) Values() map[string]string {
	all := map[string]string{
		"log_level":        o.LogLevel,
		"enable_log":       o.EnableLog,
		"db_path":          o.DBPath,
		"color":            o.Color,
		"pager":            o.Pager,
		"player":           o.Player,
		"theme":            o.Theme,
		"suggestion_limit": o.SuggestionLimit,
		"history_size":     o.HistorySize,
		"display_date":     o.DisplayDate,
		"display_time":     o.DisplayTime,
		"color_success":    o.ColorSuccess,
		"color_warning":    o.ColorWarning,
		"color_error":      o.ColorError,
		"color_info":       o.ColorInfo,
		"color_muted":      o.ColorMuted,
		"color_header":     o.ColorHeader,
	}
	for key, value := range all {
		if value == "" {
			delete(all, key)
		}
	}
	return all
}

var dotEnvOnce sync.Once

// LoadDotEnv loads .env from the working directory, once.
// Variables already present in the environment win.
func LoadDotEnv() {
	dotEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn("config: could not load .env: %v", err)
		}
	})
}

// EnvOverrides reads BRIG_* variables.
func EnvOverrides() (Overrides, error) {
	var o Overrides
	err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix})
	return o, err
}
