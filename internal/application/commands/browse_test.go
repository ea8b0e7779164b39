package commands

import (
	"errors"
	"testing"

	"jdex/internal/application"
	"jdex/internal/domain"
)

func TestBrowseEmptyListsAreas(t *testing.T) {
	results, err := NewBrowseCommand(browseIndex(), "/vault", "").Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Level != domain.LevelArea || results[0].Code != "10-19" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestBrowseAreaListsCategories(t *testing.T) {
	results, err := NewBrowseCommand(browseIndex(), "/vault", "10-19").Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(results))
	}
	if results[0].Code != "11" || results[1].Code != "12" {
		t.Errorf("got %s, %s; want 11, 12", results[0].Code, results[1].Code)
	}
	if results[0].Crumb != "10-19 Life admin" {
		t.Errorf("Crumb = %q", results[0].Crumb)
	}
}

func TestBrowseCategoryListsIDs(t *testing.T) {
	for _, query := range []string{"11", "11."} {
		t.Run(query, func(t *testing.T) {
			results, err := NewBrowseCommand(browseIndex(), "/vault", query).Execute()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(results) != 2 {
				t.Fatalf("expected 2 ids, got %d", len(results))
			}
			if results[0].Code != "11.01" || results[1].Code != "11.02" {
				t.Errorf("got %s, %s", results[0].Code, results[1].Code)
			}
		})
	}
}

func TestBrowseSingleID(t *testing.T) {
	results, err := NewBrowseCommand(browseIndex(), "/vault", "11.02").Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Code != "11.02" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestBrowseUnknownCodes(t *testing.T) {
	for _, query := range []string{"30-39", "99", "11.99"} {
		_, err := NewBrowseCommand(browseIndex(), "/vault", query).Execute()
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("browse %q: want ErrNotFound, got %v", query, err)
		}
	}
}

func TestBrowseTextFallsThroughToSearch(t *testing.T) {
	results, err := NewBrowseCommand(browseIndex(), "/vault", "house").Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Code != "12" {
		t.Errorf("unexpected results: %+v", results)
	}
}
