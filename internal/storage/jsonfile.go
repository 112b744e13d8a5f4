package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// JSONFile stores saves as one JSON object {name: record} in a single file.
// Every operation reads the file afresh, so edits made while a game is
// running are picked up.
type JSONFile struct {
	path   string
	logger *log.Logger
}

// OpenJSONFile returns a store backed by the JSON file at path. The file is
// created on the first Put.
func OpenJSONFile(path string, logger *log.Logger) (*JSONFile, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &JSONFile{path: resolved, logger: logger}, nil
}

// errUnparsable marks a save file that is not a JSON object at all.
var errUnparsable = errors.New("not a JSON object")

// read loads the save map. A missing file is an empty store. Entries whose
// value is not a string are skipped so the rest stay readable.
func (f *JSONFile) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("storage: cannot parse %s: %w: %w", f.path, errUnparsable, err)
	}

	saves := make(map[string]string, len(raw))
	for name, value := range raw {
		var record *string
		if err := json.Unmarshal(value, &record); err != nil || record == nil {
			f.logger.Warn("skipping save entry that is not a record", "path", f.path, "name", name)
			continue
		}
		saves[name] = *record
	}
	return saves, nil
}

// write replaces the file atomically.
func (f *JSONFile) write(saves map[string]string) error {
	data, err := json.MarshalIndent(saves, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode saves: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".saves-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write saves: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write saves: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// Names returns all save names, sorted.
func (f *JSONFile) Names() ([]string, error) {
	saves, err := f.read()
	if err != nil {
		return nil, err
	}
	return sortedKeys(saves), nil
}

// Get returns the record stored under name.
func (f *JSONFile) Get(name string) (string, error) {
	saves, err := f.read()
	if err != nil {
		return "", err
	}
	record, ok := saves[name]
	if !ok {
		return "", &SaveNotFoundError{Name: name}
	}
	return record, nil
}

// Put stores record under name. A file that does not parse as a JSON object
// is replaced by a fresh store; I/O errors fail the save.
func (f *JSONFile) Put(name, record string) error {
	saves, err := f.read()
	switch {
	case errors.Is(err, errUnparsable):
		f.logger.Warn("starting a fresh save file", "path", f.path, "error", err)
		saves = map[string]string{}
	case err != nil:
		return err
	}
	saves[name] = record
	return f.write(saves)
}

// Delete removes the save called name.
func (f *JSONFile) Delete(name string) error {
	saves, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := saves[name]; !ok {
		return &SaveNotFoundError{Name: name}
	}
	delete(saves, name)
	return f.write(saves)
}

// Close is a no-op; the file is only open during operations.
func (f *JSONFile) Close() error {
	return nil
}

var _ SlotStore = (*JSONFile)(nil)
