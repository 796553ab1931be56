package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// KV is the durable key-value surface preferences are persisted to.
// Get reports ok=false for a missing key; err is reserved for I/O failures.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown preferences backend")

type Options struct {
	// Backend is one of sqlite|file|redis|memory (default: sqlite).
	Backend string
	// Path is the sqlite database or JSON file path.
	Path string
	// RedisURL is a redis:// URL or a "host:port,password=...,ssl=true" connection string.
	RedisURL string
}

// Open returns the backend selected by opts.Backend.
func Open(ctx context.Context, opts Options) (KV, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	var (
		kv  KV
		err error
	)
	switch backend {
	case "", BackendSQLite:
		var s *SQLite
		if s, err = OpenSQLite(ctx, opts.Path); err == nil {
			kv = s
		}
	case BackendFile:
		var f *File
		if f, err = OpenFile(opts.Path); err == nil {
			kv = f
		}
	case BackendRedis:
		var r *Redis
		if r, err = OpenRedis(ctx, opts.RedisURL); err == nil {
			kv = r
		}
	case BackendMemory:
		kv = NewMemory()
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s preferences: %w", backendName(backend), err)
	}
	return kv, nil
}

func backendName(b string) string {
	if b == "" {
		return BackendSQLite
	}
	return b
}
