package world

import "strings"

// Category groups themes for map styling
type Category string

// Theme categories
const (
	CategoryInterior    Category = "interior"
	CategoryExterior    Category = "exterior"
	CategoryUnderground Category = "underground"
	CategoryOutdoor     Category = "outdoor"
	CategoryIndoor      Category = "indoor"
)

// DefaultThemeName is used by rooms that do not name a theme
const DefaultThemeName = "default"

// ParseCategory normalises a theme type, falling back to interior
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryInterior, CategoryExterior, CategoryUnderground, CategoryOutdoor, CategoryIndoor:
		return c
	default:
		return CategoryInterior
	}
}

// Theme is shared styling and metadata for a group of rooms
type Theme struct {
	Name         string
	Description  string
	Category     Category
	Icon         string
	Music        string
	DefaultImage string
}
