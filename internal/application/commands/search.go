package commands

import (
	"sort"
	"strings"

	"jdex/internal/application"
	"jdex/internal/domain"
)

// Result is one row returned by search and browse: enough display and
// ancestor state for a front-end to render it and drive a follow-up
// creation step.
type Result struct {
	Level        domain.Level
	Code         string
	Name         string // full display name as on disk
	Path         string // absolute path, "" for section dividers
	AreaCode     string
	CategoryCode string
	Section      bool
	Crumb        string // ancestor names, e.g. "10-19 Life admin → 11 Me"

	rank int
}

// Match ranks, best first. Ties break by ascending code.
const (
	rankExactCode = iota
	rankNamePrefix
	rankSubstring
	rankMiss
)

// SearchCommand filters and ranks nodes of the cached hierarchy.
// An empty query lists everything at the requested level(s); without a
// level filter results are grouped areas, then categories, then ids.
type SearchCommand struct {
	index *domain.Index
	root  string
	Query string
	Level domain.Level // LevelNone searches all levels
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index *domain.Index, root, query string, level domain.Level) *SearchCommand {
	return &SearchCommand{
		index: index,
		root:  root,
		Query: strings.TrimSpace(query),
		Level: level,
	}
}

// Execute returns ranked results, grouped by level in fixed order
func (c *SearchCommand) Execute() []Result {
	var results []Result

	if c.wantLevel(domain.LevelArea) {
		for _, areaCode := range c.index.SortedAreaCodes() {
			area := c.index.Area(areaCode)
			if r, ok := c.candidate(domain.LevelArea, areaCode, area.Name, false); ok {
				r.AreaCode = areaCode
				results = append(results, r)
			}
		}
	}

	if c.wantLevel(domain.LevelCategory) {
		for _, areaCode := range c.index.SortedAreaCodes() {
			area := c.index.Area(areaCode)
			for _, catCode := range area.SortedCategoryCodes() {
				cat := area.Categories[catCode]
				if r, ok := c.candidate(domain.LevelCategory, catCode, cat.Name, false); ok {
					r.AreaCode = areaCode
					r.CategoryCode = catCode
					r.Crumb = area.Name
					results = append(results, r)
				}
			}
		}
	}

	if c.wantLevel(domain.LevelID) {
		for _, areaCode := range c.index.SortedAreaCodes() {
			area := c.index.Area(areaCode)
			for _, catCode := range area.SortedCategoryCodes() {
				cat := area.Categories[catCode]
				for _, idCode := range cat.SortedIDCodes() {
					id := cat.IDs[idCode]
					r, ok := c.candidate(domain.LevelID, idCode, id.Name, id.Section)
					if !ok {
						continue
					}
					r.AreaCode = areaCode
					r.CategoryCode = catCode
					r.Section = id.Section
					r.Crumb = area.Name + " → " + cat.Name
					if section := cat.SectionName(idCode); section != "" {
						r.Crumb += " → " + section
					}
					results = append(results, r)
				}
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Level != results[j].Level {
			return results[i].Level < results[j].Level
		}
		if results[i].rank != results[j].rank {
			return results[i].rank < results[j].rank
		}
		return results[i].Code < results[j].Code
	})

	return results
}

func (c *SearchCommand) wantLevel(level domain.Level) bool {
	return c.Level == domain.LevelNone || c.Level == level
}

func (c *SearchCommand) candidate(level domain.Level, code, name string, section bool) (Result, bool) {
	rank := rankMiss
	if c.Query == "" {
		// Pure browsing: everything at the level, code order
		rank = rankSubstring
	} else {
		if section {
			// Dividers are grouping rows, not searchable content
			return Result{}, false
		}
		rank = matchRank(code, name, c.Query)
		if rank == rankMiss {
			return Result{}, false
		}
	}

	r := Result{
		Level: level,
		Code:  code,
		Name:  name,
		rank:  rank,
	}
	if path, err := application.ResolvePath(c.root, c.index, code); err == nil {
		r.Path = path
	}
	return r, true
}

// matchRank scores a node against a query: exact code match beats
// name-starts-with, which beats substring-anywhere over name and code.
// Matching is case-insensitive.
func matchRank(code, name, query string) int {
	q := strings.ToLower(query)

	if strings.ToLower(code) == q {
		return rankExactCode
	}
	_, bare := domain.SplitFolderName(name)
	if strings.HasPrefix(strings.ToLower(bare), q) {
		return rankNamePrefix
	}
	if strings.Contains(strings.ToLower(name), q) || strings.Contains(strings.ToLower(code), q) {
		return rankSubstring
	}
	return rankMiss
}
