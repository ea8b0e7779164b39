package commands

import (
	"regexp"
	"strings"

	"jdex/internal/application"
	"jdex/internal/domain"
)

var partialIDRegex = regexp.MustCompile(`^\d{2}\.$`)

// BrowseCommand navigates the cached hierarchy by query pattern:
// an empty query lists areas, an area code lists its categories, a
// category code (or "11.") lists its ids, an id code shows that entry,
// and anything else falls through to a cross-level text search.
type BrowseCommand struct {
	index *domain.Index
	root  string
	Query string
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(index *domain.Index, root, query string) *BrowseCommand {
	return &BrowseCommand{
		index: index,
		root:  root,
		Query: strings.TrimSpace(query),
	}
}

// Execute returns the rows for the query. Unknown codes fail with
// ErrNotFound carrying the offending code.
func (c *BrowseCommand) Execute() ([]Result, error) {
	query := c.Query

	if partialIDRegex.MatchString(query) {
		query = strings.TrimSuffix(query, ".")
	}

	if query == "" {
		// Top of the hierarchy: the area listing, not every node
		return NewSearchCommand(c.index, c.root, "", domain.LevelArea).Execute(), nil
	}

	switch domain.ParseCode(query) {
	case domain.LevelArea:
		return c.categoriesOf(query)
	case domain.LevelCategory:
		return c.idsOf(query)
	case domain.LevelID:
		return c.singleID(query)
	}

	// Free-text search across all levels
	return NewSearchCommand(c.index, c.root, query, domain.LevelNone).Execute(), nil
}

func (c *BrowseCommand) categoriesOf(areaCode string) ([]Result, error) {
	area := c.index.Area(areaCode)
	if area == nil {
		return nil, &application.NotFoundError{Code: areaCode}
	}

	var results []Result
	for _, catCode := range area.SortedCategoryCodes() {
		cat := area.Categories[catCode]
		r := Result{
			Level:        domain.LevelCategory,
			Code:         catCode,
			Name:         cat.Name,
			AreaCode:     areaCode,
			CategoryCode: catCode,
			Crumb:        area.Name,
		}
		if path, err := application.ResolvePath(c.root, c.index, catCode); err == nil {
			r.Path = path
		}
		results = append(results, r)
	}
	return results, nil
}

func (c *BrowseCommand) idsOf(catCode string) ([]Result, error) {
	cat, areaCode := c.index.Category(catCode)
	if cat == nil {
		return nil, &application.NotFoundError{Code: catCode}
	}
	area := c.index.Area(areaCode)

	var results []Result
	for _, idCode := range cat.SortedIDCodes() {
		results = append(results, c.idResult(idCode, cat, areaCode, area.Name))
	}
	return results, nil
}

func (c *BrowseCommand) singleID(idCode string) ([]Result, error) {
	id, catCode, areaCode := c.index.IDEntry(idCode)
	if id == nil {
		return nil, &application.NotFoundError{Code: idCode}
	}
	cat, _ := c.index.Category(catCode)
	area := c.index.Area(areaCode)
	return []Result{c.idResult(idCode, cat, areaCode, area.Name)}, nil
}

func (c *BrowseCommand) idResult(idCode string, cat *domain.Category, areaCode, areaName string) Result {
	id := cat.IDs[idCode]
	r := Result{
		Level:        domain.LevelID,
		Code:         idCode,
		Name:         id.Name,
		AreaCode:     areaCode,
		CategoryCode: domain.CategoryOf(idCode),
		Section:      id.Section,
		Crumb:        areaName + " → " + cat.Name,
	}
	if section := cat.SectionName(idCode); section != "" {
		r.Crumb += " → " + section
	}
	if path, err := application.ResolvePath(c.root, c.index, idCode); err == nil {
		r.Path = path
	}
	return r
}
