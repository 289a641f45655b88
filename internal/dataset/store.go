package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/statloom/statloom-cli/internal/utils"
)

// Snapshot is a persisted dataset: the values plus how they were obtained.
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"` // e.g. "uniform(0, 1) n=1000 seed=42" or a file path
	Values    []float64 `json:"values"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists dataset snapshots as JSON files under one directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily
// on the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the on-disk snapshot directory path.
func (s *Store) Dir() string { return s.dir }

// Save persists values as a new snapshot and returns it.
func (s *Store) Save(name, source string, values []float64) (*Snapshot, error) {
	if len(values) == 0 {
		return nil, errors.New("refusing to save an empty dataset")
	}
	if err := utils.EnsureDir(s.dir); err != nil {
		return nil, fmt.Errorf("ensure datasets dir: %w", err)
	}
	snap := &Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		Values:    append([]float64(nil), values...),
		CreatedAt: time.Now(),
	}
	data, err := utils.PrettyJSON(snap)
	if err != nil {
		return nil, err
	}
	if err := utils.SafeWriteFile(s.path(snap.ID), data); err != nil {
		return nil, err
	}
	return snap, nil
}

// Load reads one snapshot by ID. The ID may be abbreviated to a unique
// prefix.
func (s *Store) Load(id string) (*Snapshot, error) {
	full, err := s.resolveID(id)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path(full))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dataset %s not found", id)
		}
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", id, err)
	}
	return &snap, nil
}

// List returns all snapshots, newest first.
func (s *Store) List() ([]*Snapshot, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read datasets dir: %w", err)
	}
	var out []*Snapshot
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		snap, err := s.Load(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue // skip unreadable entries rather than failing the listing
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Delete removes one snapshot by ID or unique ID prefix.
func (s *Store) Delete(id string) error {
	full, err := s.resolveID(id)
	if err != nil {
		return err
	}
	if err := os.Remove(s.path(full)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("dataset %s not found", id)
		}
		return fmt.Errorf("delete dataset: %w", err)
	}
	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// resolveID expands an abbreviated ID to the full one when the prefix is
// unambiguous.
func (s *Store) resolveID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("dataset id is required")
	}
	if _, err := os.Stat(s.path(id)); err == nil {
		return id, nil
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("dataset %s not found", id)
		}
		return "", fmt.Errorf("read datasets dir: %w", err)
	}
	var match string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".json")
		if !strings.HasPrefix(name, id) || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("dataset id %s is ambiguous", id)
		}
		match = name
	}
	if match == "" {
		return "", fmt.Errorf("dataset %s not found", id)
	}
	return match, nil
}
