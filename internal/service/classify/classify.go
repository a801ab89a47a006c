// Package classify maps a source file path to a named asset category by
// keyword match against the file name and its parent directory.
package classify

import (
	"path/filepath"
	"strings"
)

// DefaultCategory is returned when no keyword matches.
const DefaultCategory = "Misc"

type categoryEntry struct {
	keyword string
	display string
}

// Table order is the tie-break: the first entry whose keyword appears in the
// base name or parent directory name wins. A map would have undefined
// iteration order, so this stays a slice.
var categories = []categoryEntry{
	{"characters", "Characters"},
	{"weapons", "Weapons"},
	{"armor", "Armor"},
	{"monsters", "Monsters"},
	{"environment", "Environment"},
	{"props", "Props"},
	{"vfx", "VFX"},
	{"ui", "UI"},
}

// Classify derives the asset category from a path. Pure function: the path
// need not exist and the result is never persisted.
func Classify(path string) string {
	base := strings.ToLower(stem(filepath.Base(path)))
	parent := strings.ToLower(filepath.Base(filepath.Dir(path)))

	for _, e := range categories {
		if strings.Contains(base, e.keyword) || strings.Contains(parent, e.keyword) {
			return e.display
		}
	}

	return DefaultCategory
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
