package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Level represents the depth of a Johnny Decimal entry
type Level int

const (
	LevelNone     Level = iota
	LevelArea           // 10-19
	LevelCategory       // 11
	LevelID             // 11.01
)

func (l Level) String() string {
	switch l {
	case LevelArea:
		return "area"
	case LevelCategory:
		return "category"
	case LevelID:
		return "id"
	default:
		return "none"
	}
}

// ParseLevelName converts a level name ("area", "category", "id") to a Level
func ParseLevelName(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "area":
		return LevelArea, nil
	case "category":
		return LevelCategory, nil
	case "id":
		return LevelID, nil
	default:
		return LevelNone, fmt.Errorf("invalid level: %q (expected area, category, or id)", name)
	}
}

// SectionMarker flags a folder as a section divider, e.g. "11.10 ■ Paperwork".
// Dividers occupy their numeric slot but never resolve to a browsable path.
const SectionMarker = "■"

var (
	areaFolderRegex     = regexp.MustCompile(`^(\d0-\d9)\s+(.+)$`)
	categoryFolderRegex = regexp.MustCompile(`^(\d{2})\s+(.+)$`)
	idFolderRegex       = regexp.MustCompile(`^(\d{2}\.\d{2})\s+(.+)$`)

	areaCodeRegex     = regexp.MustCompile(`^\d0-\d9$`)
	categoryCodeRegex = regexp.MustCompile(`^\d{2}$`)
	idCodeRegex       = regexp.MustCompile(`^\d{2}\.\d{2}$`)
)

// MatchLevel classifies a folder name by its Johnny Decimal prefix.
// Returns LevelNone for folders outside the numbering convention.
func MatchLevel(folderName string) Level {
	switch {
	case areaFolderRegex.MatchString(folderName):
		return LevelArea
	case idFolderRegex.MatchString(folderName):
		return LevelID
	case categoryFolderRegex.MatchString(folderName):
		return LevelCategory
	default:
		return LevelNone
	}
}

// ParseCode classifies a bare code string ("10-19", "11", "11.01")
func ParseCode(code string) Level {
	code = strings.TrimSpace(code)
	switch {
	case areaCodeRegex.MatchString(code):
		return LevelArea
	case idCodeRegex.MatchString(code):
		return LevelID
	case categoryCodeRegex.MatchString(code):
		return LevelCategory
	default:
		return LevelNone
	}
}

// SplitFolderName separates a folder name into its code and description.
// e.g. "11.01 Health Records" -> ("11.01", "Health Records")
func SplitFolderName(folderName string) (code, name string) {
	parts := strings.SplitN(folderName, " ", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// FolderName builds the canonical on-disk folder name for a code.
// Idempotent: a name that already starts with the code is not prefixed again.
func FolderName(code, name string) string {
	name = strings.TrimSpace(name)
	if name == code || strings.HasPrefix(name, code+" ") {
		return name
	}
	return fmt.Sprintf("%s %s", code, name)
}

// AreaRange returns the numeric bounds of an area code, e.g. "10-19" -> (10, 19).
// The range must span exactly the ten numbers of one decade.
func AreaRange(areaCode string) (lo, hi int, err error) {
	if !areaCodeRegex.MatchString(areaCode) {
		return 0, 0, fmt.Errorf("invalid area code: %s", areaCode)
	}
	parts := strings.Split(areaCode, "-")
	lo, _ = strconv.Atoi(parts[0])
	hi, _ = strconv.Atoi(parts[1])
	if hi != lo+9 {
		return 0, 0, fmt.Errorf("area range not contiguous: %s", areaCode)
	}
	return lo, hi, nil
}

// CategoryInArea reports whether a category code falls inside an area's range
func CategoryInArea(catCode, areaCode string) bool {
	lo, hi, err := AreaRange(areaCode)
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(catCode)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

// CategoryOf extracts the category code from an ID code, e.g. "11.01" -> "11"
func CategoryOf(idCode string) string {
	return strings.SplitN(idCode, ".", 2)[0]
}

// SlotNumber extracts the two-digit sequence number from an ID code.
// Returns -1 for malformed codes.
func SlotNumber(idCode string) int {
	parts := strings.SplitN(idCode, ".", 2)
	if len(parts) != 2 {
		return -1
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	return n
}

// SlotCode formats a category code and sequence number as an ID code
func SlotCode(catCode string, num int) string {
	return fmt.Sprintf("%s.%02d", catCode, num)
}

// IsSectionName reports whether a folder name carries the section marker
func IsSectionName(folderName string) bool {
	return strings.Contains(folderName, SectionMarker)
}

// SectionDisplayName strips the section marker for cleaner display
func SectionDisplayName(name string) string {
	name = strings.ReplaceAll(name, SectionMarker+" ", "")
	return strings.ReplaceAll(name, SectionMarker, "")
}
