package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/inovacc/studyplan/internal/store/sqlite"
)

// Keys under which the application collections are persisted.
const (
	KeyClasses  = "classes"
	KeyTodos    = "todos"
	KeyStudyLog = "studyLog"
	KeyGoal     = "goal"
	KeyDark     = "dark"
)

// KV is the key/value persistence used by the application state.
// Get returns nil, nil for a missing key.
type KV interface {
	Ping() error
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Keys() ([]string, error)
	Close() error
}

// Backend names a KV implementation.
type Backend string

const (
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ParseBackend validates a backend name, defaulting empty input to bolt.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendBolt, nil
	case BackendBolt, BackendSQLite, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (want bolt, sqlite or memory)", s)
	}
}

// FileName returns the database file name used by the backend inside the
// data directory, or "" for backends without a file.
func (b Backend) FileName() string {
	switch b {
	case BackendBolt:
		return "studyplan.bolt"
	case BackendSQLite:
		return "studyplan.db"
	default:
		return ""
	}
}

// Open opens the backend's store inside dataDir. The caller owns the
// returned handle and must Close it.
func Open(backend Backend, dataDir string) (KV, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		s, err := sqlite.New(filepath.Join(dataDir, backend.FileName()))
		if err != nil {
			return nil, err
		}

		return s, nil
	case BackendBolt, "":
		return NewBolt(filepath.Join(dataDir, BackendBolt.FileName()))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
