package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"jdex/internal/application"
	"jdex/internal/domain"
)

func sampleIndex() *domain.Index {
	return &domain.Index{Areas: map[string]*domain.Area{
		"10-19": {
			Name: "10-19 Life admin",
			Categories: map[string]*domain.Category{
				"11": {
					Name: "11 Me",
					IDs: map[string]*domain.ID{
						"11.01": {Name: "11.01 Health Records"},
						"11.10": {Name: "11.10 ■ Paperwork", Section: true},
					},
				},
			},
		},
	}}
}

func TestRoundTrip(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "jd", "index.json"))
	index := sampleIndex()

	if err := store.Save(index); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !reflect.DeepEqual(loaded, index) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, index)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "index.json")
	if err := New(path).Save(domain.NewIndex()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("document not written: %v", err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "index.json"))
	if err := store.Save(sampleIndex()); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "index.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestLoadMissing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent.json"))
	_, err := store.Load()
	if !errors.Is(err, application.ErrIndexMissing) {
		t.Errorf("want ErrIndexMissing, got %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"whitespace only", "  \n"},
		{"invalid json", "{not json"},
		{"missing areas key", `{"foo": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := New(path).Load()
			if !errors.Is(err, application.ErrIndexCorrupt) {
				t.Errorf("want ErrIndexCorrupt, got %v", err)
			}
		})
	}
}

func TestLoadNormalizesNilMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	doc := `{"areas": {"10-19": {"name": "10-19 Life admin"}}}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	index, err := New(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if index.Area("10-19").Categories == nil {
		t.Error("nil category map not normalized")
	}
}

func TestSaveOverwritesPreviousContent(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "index.json"))

	if err := store.Save(sampleIndex()); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(domain.NewIndex()); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Areas) != 0 {
		t.Errorf("expected empty index after replace, got %d areas", len(loaded.Areas))
	}
}
