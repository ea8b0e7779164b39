package ports

import "jdex/internal/domain"

// IndexStore persists the cached hierarchy as a single document.
// Save replaces the whole document atomically; readers never observe a
// partially written index.
type IndexStore interface {
	Load() (*domain.Index, error)
	Save(index *domain.Index) error
	Path() string
}
