package domain

// MaxSlot is the highest two-digit sequence number in a category
const MaxSlot = 99

// SlotSuggestions holds the candidate ID codes for a new entry in a
// category. Gaps are unused numbers between the lowest and highest
// occupied slots, ascending; Append is the first unused number past the
// high-water mark ("" when 99 is already taken). Both kinds are
// surfaced so the caller can fill a gap or extend at the end.
type SlotSuggestions struct {
	Gaps   []string
	Append string
}

// All returns every candidate, gaps first, append last
func (s SlotSuggestions) All() []string {
	out := append([]string{}, s.Gaps...)
	if s.Append != "" {
		out = append(out, s.Append)
	}
	return out
}

// UsedSlots returns the occupied sequence numbers of a category.
// Section dividers occupy their slot like any other entry.
func UsedSlots(cat *Category) map[int]bool {
	used := make(map[int]bool, len(cat.IDs))
	for code := range cat.IDs {
		if n := SlotNumber(code); n >= 0 {
			used[n] = true
		}
	}
	return used
}

// SuggestSlots computes the candidate slots for a category.
// full is true when all 100 sequence numbers are occupied.
func SuggestSlots(catCode string, cat *Category) (s SlotSuggestions, full bool) {
	used := UsedSlots(cat)
	if len(used) > MaxSlot {
		return SlotSuggestions{}, true
	}

	lo, hi := -1, -1
	for n := 0; n <= MaxSlot; n++ {
		if used[n] {
			if lo < 0 {
				lo = n
			}
			hi = n
		}
	}

	// Empty category: everything is free, start at the bottom
	if lo < 0 {
		return SlotSuggestions{Append: SlotCode(catCode, 0)}, false
	}

	for n := lo + 1; n < hi; n++ {
		if !used[n] {
			s.Gaps = append(s.Gaps, SlotCode(catCode, n))
		}
	}
	if hi < MaxSlot {
		s.Append = SlotCode(catCode, hi+1)
	}
	return s, false
}

// SlotFree reports whether an ID code's sequence number is unoccupied
// in the category
func SlotFree(cat *Category, idCode string) bool {
	_, taken := cat.IDs[idCode]
	return !taken
}
