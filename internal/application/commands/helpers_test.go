package commands

import (
	"jdex/internal/domain"
)

// fakeStore is an in-memory ports.IndexStore
type fakeStore struct {
	index   *domain.Index
	loadErr error
	saved   *domain.Index
}

func (s *fakeStore) Load() (*domain.Index, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.index, nil
}

func (s *fakeStore) Save(index *domain.Index) error {
	s.saved = index
	s.index = index
	return nil
}

func (s *fakeStore) Path() string { return "/tmp/index.json" }

// fakeRepo is an in-memory ports.VaultRepository
type fakeRepo struct {
	root    string
	index   *domain.Index
	report  *domain.ScanReport
	created []string
}

func (r *fakeRepo) Scan() (*domain.Index, *domain.ScanReport, error) {
	return r.index, r.report, nil
}

func (r *fakeRepo) CreateFolder(path string) error {
	r.created = append(r.created, path)
	return nil
}

func (r *fakeRepo) Root() string { return r.root }

// browseIndex is one area, two categories, three ids: the smallest
// hierarchy that exercises grouping across all levels
func browseIndex() *domain.Index {
	return &domain.Index{Areas: map[string]*domain.Area{
		"10-19": {
			Name: "10-19 Life admin",
			Categories: map[string]*domain.Category{
				"11": {
					Name: "11 Me",
					IDs: map[string]*domain.ID{
						"11.01": {Name: "11.01 Health Records"},
						"11.02": {Name: "11.02 Other Healthcare"},
					},
				},
				"12": {
					Name: "12 House",
					IDs: map[string]*domain.ID{
						"12.01": {Name: "12.01 Mortgage"},
					},
				},
			},
		},
	}}
}
