package domain

import (
	"reflect"
	"testing"
)

func catWithSlots(nums ...int) *Category {
	cat := NewCategory("11 Me")
	for _, n := range nums {
		cat.IDs[SlotCode("11", n)] = &ID{Name: SlotCode("11", n) + " X"}
	}
	return cat
}

func TestSuggestSlots(t *testing.T) {
	tests := []struct {
		name       string
		occupied   []int
		wantGaps   []string
		wantAppend string
	}{
		{
			name:       "gap and append both offered",
			occupied:   []int{1, 2, 5},
			wantGaps:   []string{"11.03", "11.04"},
			wantAppend: "11.06",
		},
		{
			name:       "no gaps",
			occupied:   []int{0, 1, 2},
			wantGaps:   nil,
			wantAppend: "11.03",
		},
		{
			name:       "empty category starts at zero",
			occupied:   nil,
			wantGaps:   nil,
			wantAppend: "11.00",
		},
		{
			name:       "high water at 99 leaves only gaps",
			occupied:   []int{1, 99},
			wantGaps:   gapCodes(2, 98),
			wantAppend: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, full := SuggestSlots("11", catWithSlots(tt.occupied...))
			if full {
				t.Fatal("unexpected full category")
			}
			if !reflect.DeepEqual(s.Gaps, tt.wantGaps) {
				t.Errorf("Gaps = %v, want %v", s.Gaps, tt.wantGaps)
			}
			if s.Append != tt.wantAppend {
				t.Errorf("Append = %q, want %q", s.Append, tt.wantAppend)
			}
		})
	}
}

func gapCodes(lo, hi int) []string {
	var codes []string
	for n := lo; n <= hi; n++ {
		codes = append(codes, SlotCode("11", n))
	}
	return codes
}

func TestSuggestSlotsFull(t *testing.T) {
	all := make([]int, 100)
	for i := range all {
		all[i] = i
	}
	_, full := SuggestSlots("11", catWithSlots(all...))
	if !full {
		t.Error("expected full category")
	}
}

func TestSuggestSlotsCountsSections(t *testing.T) {
	cat := catWithSlots(1, 2)
	cat.IDs["11.10"] = &ID{Name: "11.10 ■ Paperwork", Section: true}

	s, full := SuggestSlots("11", cat)
	if full {
		t.Fatal("unexpected full category")
	}
	// The divider at .10 is occupied: gaps run 03-09, append is .11
	if len(s.Gaps) != 7 || s.Gaps[0] != "11.03" || s.Gaps[6] != "11.09" {
		t.Errorf("Gaps = %v", s.Gaps)
	}
	if s.Append != "11.11" {
		t.Errorf("Append = %q, want 11.11", s.Append)
	}
}

func TestSlotSuggestionsAll(t *testing.T) {
	s := SlotSuggestions{Gaps: []string{"11.03"}, Append: "11.06"}
	if got := s.All(); !reflect.DeepEqual(got, []string{"11.03", "11.06"}) {
		t.Errorf("All = %v", got)
	}
}

func TestSlotFree(t *testing.T) {
	cat := catWithSlots(2)
	if SlotFree(cat, "11.02") {
		t.Error("11.02 should be taken")
	}
	if !SlotFree(cat, "11.03") {
		t.Error("11.03 should be free")
	}
}
