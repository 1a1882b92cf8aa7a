// Package prefs is a tiny key-value preference store: one namespace, string
// keys, string values. It stands in for the platform preference store the
// journal persists into.
package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/faizmokh/mood/internal/files"
	"github.com/faizmokh/mood/internal/log"
)

// ErrNotFound is returned by Get when the key has never been written or was deleted.
var ErrNotFound = errors.New("preference not found")

// Store reads and writes string values under string keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Backends lists every supported backend.
var Backends = []Backend{BackendFile, BackendSQLite, BackendMemory}

// IsValid reports whether b is a known backend.
func (b Backend) IsValid() bool {
	for _, known := range Backends {
		if b == known {
			return true
		}
	}
	return false
}

// Open builds the Store for backend, rooted in the manager's base directory.
func Open(ctx context.Context, backend Backend, manager *files.Manager, namespace string, logger *log.Logger) (Store, error) {
	if logger == nil {
		logger = log.Nop()
	}
	logger = logger.WithComponent(log.ComponentPrefs)

	switch backend {
	case BackendFile:
		logger.Debug("opening file preferences", "path", manager.PrefsPath(namespace))
		return NewFile(manager.PrefsPath(namespace)), nil
	case BackendSQLite:
		if err := manager.EnsureBaseDir(); err != nil {
			return nil, err
		}
		logger.Debug("opening sqlite preferences", "path", manager.DatabasePath())
		return OpenSQLite(ctx, manager.DatabasePath(), namespace)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported backend %q", backend)
	}
}
