package commands

import (
	"testing"

	"jdex/internal/domain"
)

func TestRebuildReplacesStore(t *testing.T) {
	scanned := browseIndex()
	repo := &fakeRepo{
		root:   "/vault",
		index:  scanned,
		report: &domain.ScanReport{AreaCount: 1, CategoryCount: 2, IDCount: 3},
	}
	store := &fakeStore{index: domain.NewIndex()}

	report, err := NewRebuildCommand(repo, store).Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.AreaCount != 1 || report.CategoryCount != 2 || report.IDCount != 3 {
		t.Errorf("unexpected report: %+v", report)
	}
	if store.saved != scanned {
		t.Error("scanned index was not persisted")
	}
}
