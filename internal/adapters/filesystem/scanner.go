package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"jdex/internal/config"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// Repository implements ports.VaultRepository over the real directory
// tree rooted at the configured Johnny Decimal root.
type Repository struct {
	root string
}

var _ ports.VaultRepository = (*Repository)(nil)

// NewRepository creates a repository for the given root path
func NewRepository(root string) *Repository {
	return &Repository{root: config.ExpandHome(root)}
}

// Root returns the hierarchy root
func (r *Repository) Root() string {
	return r.root
}

// Scan walks the three fixed levels of the hierarchy and assembles a
// fresh index from the folder names found on disk. Folders that match
// a level pattern but violate the numbering rules are skipped with a
// warning; unreadable subtrees are skipped and reported. A missing or
// empty root yields an empty index, not an error.
func (r *Repository) Scan() (*domain.Index, *domain.ScanReport, error) {
	index := domain.NewIndex()
	report := &domain.ScanReport{}

	entries, err := os.ReadDir(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return index, report, nil
		}
		return nil, nil, fmt.Errorf("reading root %s: %w", r.root, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if domain.MatchLevel(name) != domain.LevelArea {
			continue
		}
		areaCode, _ := domain.SplitFolderName(name)
		if _, _, err := domain.AreaRange(areaCode); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("skipping %q: %v", name, err))
			continue
		}

		area := domain.NewArea(name)
		r.scanArea(filepath.Join(r.root, name), areaCode, area, report)
		index.Areas[areaCode] = area
	}

	report.AreaCount, report.CategoryCount, report.IDCount = index.Count()
	return index, report, nil
}

func (r *Repository) scanArea(areaPath, areaCode string, area *domain.Area, report *domain.ScanReport) {
	entries, err := os.ReadDir(areaPath)
	if err != nil {
		report.Skipped = append(report.Skipped, areaPath)
		report.Warnings = append(report.Warnings, fmt.Sprintf("cannot read %q: %v", areaPath, err))
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if domain.MatchLevel(name) != domain.LevelCategory {
			continue
		}
		catCode, _ := domain.SplitFolderName(name)
		if !domain.CategoryInArea(catCode, areaCode) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("skipping %q: category %s outside area %s", name, catCode, areaCode))
			continue
		}

		cat := domain.NewCategory(name)
		r.scanCategory(filepath.Join(areaPath, name), catCode, cat, report)
		area.Categories[catCode] = cat
	}
}

func (r *Repository) scanCategory(catPath, catCode string, cat *domain.Category, report *domain.ScanReport) {
	entries, err := os.ReadDir(catPath)
	if err != nil {
		report.Skipped = append(report.Skipped, catPath)
		report.Warnings = append(report.Warnings, fmt.Sprintf("cannot read %q: %v", catPath, err))
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if domain.MatchLevel(name) != domain.LevelID {
			continue
		}
		idCode, _ := domain.SplitFolderName(name)
		if domain.CategoryOf(idCode) != catCode {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("skipping %q: id %s outside category %s", name, idCode, catCode))
			continue
		}

		cat.IDs[idCode] = &domain.ID{
			Name:    name,
			Section: domain.IsSectionName(name),
		}
	}
}

// CreateFolder creates one directory at a fully resolved path.
// Ancestors are expected to exist; the index is the source of truth
// for where new entries land.
func (r *Repository) CreateFolder(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating folder %s: %w", path, err)
	}
	return nil
}
