package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"taskplane/internal/model"
)

const (
	tasksFileName    = "tasks.json"
	settingsFileName = "settings.json"
)

// Store reads and writes the two on-disk JSON documents (tasks.json and
// settings.json) under Dir. All writes are atomic.
type Store struct {
	Dir string
}

// CorruptDocumentError reports an on-disk document that could not be
// decoded or had the wrong top-level shape. Callers fall back to defaults
// in memory and must not overwrite the file until the next successful
// save of freshly validated state.
type CorruptDocumentError struct {
	Path string
	Err  error
}

func (e CorruptDocumentError) Error() string {
	return fmt.Sprintf("corrupt document %s: %v", e.Path, e.Err)
}

func (e CorruptDocumentError) Unwrap() error { return e.Err }

// DefaultDir resolves the data directory: TASKPLANE_DIR if set (keeps
// tests and fixtures away from the real data), else ~/.taskplane.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TASKPLANE_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskplane"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) tasksPath() string {
	return filepath.Join(s.Dir, tasksFileName)
}

func (s Store) settingsPath() string {
	return filepath.Join(s.Dir, settingsFileName)
}

type tasksDocument struct {
	Tasks []model.Task `json:"tasks"`
}

// LoadTasks returns the raw, not yet normalized root entries of the tasks
// document. Both the `{"tasks": [...]}` container and the legacy bare
// array are accepted; a missing file yields an empty forest.
//
// The entries come back as decoded `any` values on purpose: legacy files
// can hold shape-malformed nodes that the Normalizer has to absorb, so
// decoding straight into model.Task would reject exactly the inputs this
// layer exists to recover.
func (s Store) LoadTasks() ([]any, error) {
	b, err := os.ReadFile(s.tasksPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []any{}, nil
		}
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, CorruptDocumentError{Path: s.tasksPath(), Err: err}
	}
	switch v := raw.(type) {
	case map[string]any:
		if arr, ok := v["tasks"].([]any); ok {
			return arr, nil
		}
	case []any:
		return v, nil
	}
	return nil, CorruptDocumentError{
		Path: s.tasksPath(),
		Err:  errors.New(`expected {"tasks": [...]} or a bare array`),
	}
}

// SaveTasks atomically replaces the tasks document with the canonical
// forest, wrapped in its named container.
func (s Store) SaveTasks(forest []model.Task) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	if forest == nil {
		forest = []model.Task{}
	}
	b, err := json.MarshalIndent(tasksDocument{Tasks: forest}, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(s.tasksPath(), b, 0o644)
}

// LoadSettings returns the settings document merged against defaults, or
// plain defaults if the file is missing. A corrupt file also yields
// defaults, together with the CorruptDocumentError so the caller can
// report it.
func (s Store) LoadSettings() (Settings, error) {
	b, err := os.ReadFile(s.settingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}

	var cfg Settings
	if err := json.Unmarshal(b, &cfg); err != nil {
		return DefaultSettings(), CorruptDocumentError{Path: s.settingsPath(), Err: err}
	}
	return cfg, nil
}

// SaveSettings atomically replaces the settings document. A copy of the
// previous file is kept as a best-effort safety net against accidental
// overwrites; failures there never block the save.
func (s Store) SaveSettings(cfg Settings) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	path := s.settingsPath()
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(path+".bak", prev, 0o644)
	}
	return atomicWriteFile(path, b, 0o644)
}
