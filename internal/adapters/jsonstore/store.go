package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jdex/internal/application"
	"jdex/internal/config"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// Store implements ports.IndexStore on a single JSON document.
// The whole document is replaced on every save; a write-then-rename
// keeps readers from ever seeing a truncated file.
type Store struct {
	path string
}

var _ ports.IndexStore = (*Store)(nil)

// New creates a store for the given document path
func New(path string) *Store {
	return &Store{path: config.ExpandHome(path)}
}

// Path returns the document path
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the persisted index.
// A missing file is ErrIndexMissing (callers may treat it as "needs
// rebuild"); anything unparseable is ErrIndexCorrupt.
func (s *Store) Load() (*domain.Index, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", application.ErrIndexMissing, s.path)
		}
		return nil, fmt.Errorf("reading index: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, &application.CorruptError{Path: s.path, Reason: "file is empty"}
	}

	var index domain.Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, &application.CorruptError{Path: s.path, Reason: err.Error()}
	}
	if index.Areas == nil {
		return nil, &application.CorruptError{Path: s.path, Reason: `missing "areas" key`}
	}

	normalize(&index)
	return &index, nil
}

// Save serializes the index, creating parent directories as needed.
// The document is written to a temp file and renamed into place.
func (s *Store) Save(index *domain.Index) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing index: %w", err)
	}
	return nil
}

// normalize replaces nil nested maps so lookups and round-trips behave
// the same for hand-written and scanner-produced documents
func normalize(index *domain.Index) {
	for _, area := range index.Areas {
		if area.Categories == nil {
			area.Categories = map[string]*domain.Category{}
		}
		for _, cat := range area.Categories {
			if cat.IDs == nil {
				cat.IDs = map[string]*domain.ID{}
			}
		}
	}
}
