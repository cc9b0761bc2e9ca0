package world

import "strings"

// ItemID identifies an item across the whole dungeon
type ItemID string

// ItemTypeLight marks items that light up dark rooms
const ItemTypeLight = "light"

// Item represents a collectible item in the world
type Item struct {
	ID          ItemID
	Name        string
	Aliases     []string
	Type        string
	Description string

	// Unlocks names the locked room this item opens, if any
	Unlocks RoomID
}

// Matches reports whether token names this item by name, id or alias
func (i *Item) Matches(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return false
	}
	if token == strings.ToLower(i.Name) || token == string(i.ID) {
		return true
	}
	for _, alias := range i.Aliases {
		if token == strings.ToLower(alias) {
			return true
		}
	}
	return false
}

// IsLight returns true if the item lights up dark rooms
func (i *Item) IsLight() bool {
	return strings.EqualFold(i.Type, ItemTypeLight)
}
