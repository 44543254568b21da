// Package storage provides the durable key/value slots the content store
// persists into: SQLite (default), Redis, a single JSON file, and memory.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names a slot implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Slot is a content.Slot that owns a resource which must be released.
type Slot interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Backend      Backend
	DatabasePath string
	FilePath     string
	Redis        RedisConfig
}

// ParseBackend maps a configuration string to a Backend. An empty string
// selects SQLite.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendSQLite, nil
	case BackendSQLite, BackendRedis, BackendFile, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Open returns the slot selected by cfg.
func Open(cfg Config) (Slot, error) {
	switch cfg.Backend {
	case BackendSQLite, "":
		return NewSQLiteSlot(cfg.DatabasePath)
	case BackendRedis:
		return NewRedisSlot(cfg.Redis)
	case BackendFile:
		return NewFileSlot(cfg.FilePath)
	case BackendMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
