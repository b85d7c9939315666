package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/paths"
)

// ErrLockTimeout is returned when another brig process keeps the config locked.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock is an O_EXCL lock file next to config.toml holding the owner's pid.
// A lock older than stale is assumed abandoned by a crashed process.
type fileLock struct {
	path  string
	wait  time.Duration
	stale time.Duration
	poll  time.Duration
}

func newFileLock() (fileLock, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return fileLock{}, err
	}
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fileLock{}, err
	}
	return fileLock{
		path:  filepath.Join(dir, ".config.lock"),
		wait:  5 * time.Second,
		stale: 30 * time.Second,
		poll:  50 * time.Millisecond,
	}, nil
}

func (l fileLock) acquire() (*os.File, error) {
	deadline := time.Now().Add(l.wait)
	for {
		if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > l.stale {
			log.Warn("config: removing stale lock %s", l.path)
			_ = os.Remove(l.path)
		}

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			return f, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(l.poll)
	}
}

func (l fileLock) release(f *os.File) {
	_ = f.Close()
	_ = os.Remove(l.path)
}

// WithLock runs fn while holding the config lock.
func WithLock(fn func() error) error {
	l, err := newFileLock()
	if err != nil {
		return err
	}
	f, err := l.acquire()
	if err != nil {
		return err
	}
	defer l.release(f)
	return fn()
}
