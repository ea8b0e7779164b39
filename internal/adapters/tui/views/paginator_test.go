package views

import "testing"

func TestPaginatorCursorFollowsPages(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)

	if p.TotalPages() != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages())
	}

	// Walking the cursor past the page boundary moves the page
	for i := 0; i < 12; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 12 {
		t.Errorf("Cursor = %d, want 12", p.Cursor())
	}
	if p.CurrentPage() != 2 {
		t.Errorf("CurrentPage = %d, want 2", p.CurrentPage())
	}

	start, end := p.VisibleRange()
	if start != 10 || end != 20 {
		t.Errorf("VisibleRange = (%d, %d), want (10, 20)", start, end)
	}
}

func TestPaginatorClampsToBounds(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(3)

	if p.CursorUp() {
		t.Error("CursorUp at top should report no movement")
	}
	p.CursorDown()
	p.CursorDown()
	if p.CursorDown() {
		t.Error("CursorDown at bottom should report no movement")
	}
	if p.NextPage() {
		t.Error("NextPage on a single page should report no movement")
	}
}

func TestPaginatorShrinkingTotalMovesCursor(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)
	for i := 0; i < 20; i++ {
		p.CursorDown()
	}

	p.SetTotal(5)
	if p.Cursor() != 4 {
		t.Errorf("Cursor = %d, want 4 after shrink", p.Cursor())
	}
	if p.CurrentPage() != 1 {
		t.Errorf("CurrentPage = %d, want 1 after shrink", p.CurrentPage())
	}
}
