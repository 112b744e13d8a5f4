// Package storage persists save records in named slots. The canonical backend
// is a flat JSON object file; a SQLite backend is available as an alternative.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
)

// SlotStore maps save names to save records.
type SlotStore interface {
	// Names returns all save names, sorted.
	Names() ([]string, error)
	// Get returns the record stored under name or *SaveNotFoundError.
	Get(name string) (string, error)
	// Put stores record under name, replacing any previous record.
	Put(name, record string) error
	// Delete removes a save. Deleting a missing save returns *SaveNotFoundError.
	Delete(name string) error
	Close() error
}

// SaveNotFoundError reports a save name absent from the store.
type SaveNotFoundError struct {
	Name string
}

func (e *SaveNotFoundError) Error() string {
	return fmt.Sprintf("no save found with name %q", e.Name)
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open opens the slot store of the given backend at path.
func Open(backend, path string, logger *log.Logger) (SlotStore, error) {
	switch backend {
	case "", BackendJSON:
		f, err := OpenJSONFile(path, logger)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// Exists reports whether name is taken in s.
func Exists(s SlotStore, name string) (bool, error) {
	_, err := s.Get(name)
	if err == nil {
		return true, nil
	}
	var notFound *SaveNotFoundError
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, err
}

// UniqueName returns name if it is free, otherwise the first free name among
// name_1, name_2, ...
func UniqueName(taken func(string) bool, name string) string {
	if !taken(name) {
		return name
	}
	for i := 1; ; i++ {
		candidate := name + "_" + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}

// expandPath expands a leading ~ and creates the parent directory.
func expandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
