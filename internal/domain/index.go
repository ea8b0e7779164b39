package domain

import "sort"

// Index is the root of the cached Johnny Decimal hierarchy.
// It mirrors the persisted document: a strict containment tree keyed by
// code at every level, with display names carrying the full folder name.
// Map order is meaningless; consumers sort by code when presenting.
type Index struct {
	Areas map[string]*Area `json:"areas"`
}

// Area spans one decade of categories (e.g. "10-19")
type Area struct {
	Name       string               `json:"name"`
	Categories map[string]*Category `json:"categories"`
}

// Category is a two-digit grouping inside an area (e.g. "11")
type Category struct {
	Name string         `json:"name"`
	IDs  map[string]*ID `json:"ids"`
}

// ID is a leaf entry (e.g. "11.01"). Section dividers are display-only
// grouping rows; they hold a slot but are never resolved to a path.
type ID struct {
	Name    string `json:"name"`
	Section bool   `json:"section,omitempty"`
}

// NewIndex returns an empty index with a non-nil area map
func NewIndex() *Index {
	return &Index{Areas: map[string]*Area{}}
}

// NewArea returns an area with a non-nil category map
func NewArea(name string) *Area {
	return &Area{Name: name, Categories: map[string]*Category{}}
}

// NewCategory returns a category with a non-nil ID map
func NewCategory(name string) *Category {
	return &Category{Name: name, IDs: map[string]*ID{}}
}

// SortedAreaCodes returns area codes in ascending order
func (x *Index) SortedAreaCodes() []string {
	return sortedKeys(x.Areas)
}

// SortedCategoryCodes returns category codes in ascending order
func (a *Area) SortedCategoryCodes() []string {
	return sortedKeys(a.Categories)
}

// SortedIDCodes returns ID codes in ascending order
func (c *Category) SortedIDCodes() []string {
	return sortedKeys(c.IDs)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Area returns the area for a code, or nil
func (x *Index) Area(code string) *Area {
	return x.Areas[code]
}

// Category finds a category by code in any area.
// Returns the category and its parent area code.
func (x *Index) Category(code string) (*Category, string) {
	for areaCode, area := range x.Areas {
		if cat, ok := area.Categories[code]; ok {
			return cat, areaCode
		}
	}
	return nil, ""
}

// IDEntry finds an ID entry by code.
// Returns the entry, its category code, and its area code.
func (x *Index) IDEntry(code string) (*ID, string, string) {
	catCode := CategoryOf(code)
	cat, areaCode := x.Category(catCode)
	if cat == nil {
		return nil, "", ""
	}
	if id, ok := cat.IDs[code]; ok {
		return id, catCode, areaCode
	}
	return nil, "", ""
}

// AreaForCategory returns the code of the area containing a category
func (x *Index) AreaForCategory(catCode string) (string, bool) {
	_, areaCode := x.Category(catCode)
	return areaCode, areaCode != ""
}

// SectionName returns the display name of the section divider governing
// an ID code, if its decade has one. IDs in 00-09 have no section.
func (c *Category) SectionName(idCode string) string {
	num := SlotNumber(idCode)
	if num < 10 {
		return ""
	}
	decade := num / 10 * 10
	section, ok := c.IDs[SlotCode(CategoryOf(idCode), decade)]
	if !ok || !section.Section {
		return ""
	}
	return SectionDisplayName(section.Name)
}

// Count returns the number of areas, categories, and IDs in the index
func (x *Index) Count() (areas, categories, ids int) {
	areas = len(x.Areas)
	for _, area := range x.Areas {
		categories += len(area.Categories)
		for _, cat := range area.Categories {
			ids += len(cat.IDs)
		}
	}
	return areas, categories, ids
}

// ScanReport summarises one full rebuild: entry counts plus any folders
// that were skipped (pattern or range mismatches, unreadable subtrees)
type ScanReport struct {
	AreaCount     int
	CategoryCount int
	IDCount       int
	Warnings      []string
	Skipped       []string
}
