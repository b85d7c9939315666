package actions

import (
	"time"

	"github.com/footprint-tools/brig/internal/domain"
)

// Version is the version string of the binary, set via ldflags.
var Version = "dev"

// Env is the dependency set command handlers run against.
type Env struct {
	Store   domain.WorldStore
	History domain.HistoryStore
	Config  domain.ConfigProvider
	Logger  domain.Logger
	Now     func() time.Time
	Version func() string
}

// NewEnv builds an Env from the application.
func NewEnv(app *domain.Application) *Env {
	return &Env{
		Store:   app.Store,
		History: app.History,
		Config:  app.Config,
		Logger:  app.Logger,
		Now:     time.Now,
		Version: func() string { return Version },
	}
}
