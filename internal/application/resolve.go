package application

import (
	"fmt"
	"path/filepath"

	"jdex/internal/domain"
)

// ResolvePath maps a code at any level to its absolute directory path.
// Paths are derived from the root plus the chain of display names held
// in the index; the filesystem is never consulted. Any ancestor absent
// from the index yields ErrNotFound. Section dividers have no path.
func ResolvePath(root string, index *domain.Index, code string) (string, error) {
	switch domain.ParseCode(code) {
	case domain.LevelArea:
		area := index.Area(code)
		if area == nil {
			return "", &NotFoundError{Code: code}
		}
		return filepath.Join(root, area.Name), nil

	case domain.LevelCategory:
		cat, areaCode := index.Category(code)
		if cat == nil {
			return "", &NotFoundError{Code: code}
		}
		return filepath.Join(root, index.Area(areaCode).Name, cat.Name), nil

	case domain.LevelID:
		id, catCode, areaCode := index.IDEntry(code)
		if id == nil {
			return "", &NotFoundError{Code: code}
		}
		if id.Section {
			return "", &NotFoundError{Code: code}
		}
		cat, _ := index.Category(catCode)
		return filepath.Join(root, index.Area(areaCode).Name, cat.Name, id.Name), nil

	default:
		return "", fmt.Errorf("invalid code: %q", code)
	}
}
