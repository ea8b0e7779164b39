package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(p)), 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanBuildsIndex(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"10-19 Life admin/11 Me/11.01 Health Records",
		"10-19 Life admin/11 Me/11.02 Errands",
		"10-19 Life admin/12 House",
		"20-29 Work/21 Clients/21.01 Acme",
	)

	index, report, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.AreaCount != 2 || report.CategoryCount != 3 || report.IDCount != 3 {
		t.Errorf("unexpected counts: %+v", report)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}

	id, catCode, areaCode := index.IDEntry("11.01")
	if id == nil || id.Name != "11.01 Health Records" {
		t.Fatalf("IDEntry(11.01) = %+v", id)
	}
	if catCode != "11" || areaCode != "10-19" {
		t.Errorf("ancestors = (%s, %s)", catCode, areaCode)
	}
	if index.Area("20-29") == nil {
		t.Error("second area missing")
	}
}

func TestScanMissingRoot(t *testing.T) {
	index, report, err := NewRepository(filepath.Join(t.TempDir(), "absent")).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.Areas) != 0 || report.AreaCount != 0 {
		t.Errorf("expected empty index, got %+v", report)
	}
}

func TestScanIgnoresForeignFolders(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"10-19 Life admin/11 Me/11.01 Health Records",
		"Downloads",
		"10-19 Life admin/notes",
		"10-19 Life admin/11 Me/scratch",
	)
	if err := os.WriteFile(filepath.Join(root, "readme.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	index, report, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.AreaCount != 1 || report.CategoryCount != 1 || report.IDCount != 1 {
		t.Errorf("unexpected counts: %+v", report)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("non-matching folders should be ignored silently: %v", report.Warnings)
	}
	if index.Area("10-19") == nil {
		t.Error("area missing")
	}
}

func TestScanWarnsOnMisplacedCategory(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"10-19 Life admin/11 Me",
		"10-19 Life admin/21 Misc",
	)

	index, report, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	area := index.Area("10-19")
	if area == nil {
		t.Fatal("area missing")
	}
	if _, ok := area.Categories["21"]; ok {
		t.Error("misplaced category was indexed")
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "21 Misc") {
		t.Errorf("Warnings = %v", report.Warnings)
	}
}

func TestScanWarnsOnMisplacedID(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "10-19 Life admin/11 Me/12.01 Stray")

	index, report, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cat, _ := index.Category("11")
	if len(cat.IDs) != 0 {
		t.Errorf("misplaced id was indexed: %v", cat.IDs)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("Warnings = %v", report.Warnings)
	}
}

func TestScanWarnsOnBadAreaRange(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "10-29 Too wide")

	index, report, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.Areas) != 0 {
		t.Errorf("bad range was indexed: %v", index.Areas)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("Warnings = %v", report.Warnings)
	}
}

func TestScanSkipsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	mkdirs(t, root,
		"10-19 Life admin/11 Me/11.01 Health Records",
		"10-19 Life admin/12 House/12.01 Mortgage",
	)
	locked := filepath.Join(root, "10-19 Life admin", "12 House")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	index, report, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("unreadable subtree must not fail the scan: %v", err)
	}

	if len(report.Skipped) != 1 || report.Skipped[0] != locked {
		t.Errorf("Skipped = %v, want [%s]", report.Skipped, locked)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], locked) {
		t.Errorf("Warnings = %v", report.Warnings)
	}

	// The readable part of the tree is still indexed in full
	if id, _, _ := index.IDEntry("11.01"); id == nil {
		t.Error("readable id missing from index")
	}
	cat, _ := index.Category("12")
	if cat == nil {
		t.Fatal("unreadable category should still appear, just empty")
	}
	if len(cat.IDs) != 0 {
		t.Errorf("ids leaked from unreadable category: %v", cat.IDs)
	}
}

func TestScanMarksSections(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"10-19 Life admin/11 Me/11.01 Health Records",
		"10-19 Life admin/11 Me/11.10 ■ Paperwork",
	)

	index, _, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, _, _ := index.IDEntry("11.10")
	if id == nil {
		t.Fatal("section divider missing from index")
	}
	if !id.Section {
		t.Error("divider not marked as section")
	}
	if plain, _, _ := index.IDEntry("11.01"); plain.Section {
		t.Error("regular id marked as section")
	}
}

func TestCreateFolder(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "10-19 Life admin", "11 Me", "11.01 Health Records")

	if err := NewRepository(root).CreateFolder(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("created path is not a directory")
	}
}
