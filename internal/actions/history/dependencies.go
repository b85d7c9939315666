// Package history registers the commands that show, export and clear the
// record of dispatched lines.
package history

import (
	"os"
	"time"

	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/format"
)

type Deps struct {
	Store     domain.HistoryStore
	Layout    format.Layout
	Now       func() time.Time
	WriteFile func(path string, data []byte) error
}

func DefaultDeps(store domain.HistoryStore, cfg domain.ConfigProvider) Deps {
	return Deps{
		Store:  store,
		Layout: format.FromConfig(cfg.Get),
		Now:    time.Now,
		WriteFile: func(path string, data []byte) error {
			return os.WriteFile(path, data, 0o600)
		},
	}
}
