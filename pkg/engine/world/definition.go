package world

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk shape of a dungeon. YAML and JSON documents
// decode into it alike.
type Definition struct {
	Scenario *ScenarioDef `yaml:"scenario"`
	Themes   []ThemeDef   `yaml:"themes"`
	Map      MapDef       `yaml:"map"`
}

// ScenarioDef is the scenario block of a definition
type ScenarioDef struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	WelcomeMessage string `yaml:"welcome_message"`
	Difficulty     string `yaml:"difficulty"`
}

// ThemeDef is one entry of the theme list
type ThemeDef struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Type         string `yaml:"type"`
	Icon         string `yaml:"icon"`
	Music        string `yaml:"music"`
	DefaultImage string `yaml:"default_img"`
}

// MapDef holds rooms and connections. Rooms may be written either as a
// mapping of room id to room or as a list of rooms carrying room_ref_id.
type MapDef struct {
	Rooms        yaml.Node                    `yaml:"rooms"`
	Connections  map[string]map[string]string `yaml:"connections"`
	VisitedRooms []string                     `yaml:"visited_rooms"`
	StartRoom    string                       `yaml:"start_room"`
}

// RoomDef is one room of a definition
type RoomDef struct {
	RefID       string        `yaml:"room_ref_id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Theme       string        `yaml:"theme"`
	RoomType    string        `yaml:"room_type"`
	IsDark      bool          `yaml:"is_dark"`
	IsLocked    bool          `yaml:"is_locked"`
	Image       string        `yaml:"room_img"`
	NPCs        []string      `yaml:"npcs"`
	Traps       []string      `yaml:"traps"`
	Treasures   []TreasureDef `yaml:"treasures"`
}

// TreasureDef is an item placed in a room. A bare string is shorthand for
// an item with only a name.
type TreasureDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Unlocks     string   `yaml:"unlocks"`
}

// UnmarshalYAML accepts either a scalar name or a full mapping
func (t *TreasureDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		t.Name = value.Value
		return nil
	}
	type plain TreasureDef
	return value.Decode((*plain)(t))
}

// roomEntry is a decoded room together with the id it was filed under
type roomEntry struct {
	key string
	def RoomDef
}

// decodeRooms flattens both accepted room shapes into document order
func (m *MapDef) decodeRooms() ([]roomEntry, error) {
	switch m.Rooms.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if m.Rooms.Tag == "!!null" {
			return nil, nil
		}
		return nil, fmt.Errorf("rooms must be a list or a mapping, line %d", m.Rooms.Line)
	case yaml.SequenceNode:
		entries := make([]roomEntry, 0, len(m.Rooms.Content))
		for _, n := range m.Rooms.Content {
			var def RoomDef
			if err := n.Decode(&def); err != nil {
				return nil, fmt.Errorf("room at line %d: %w", n.Line, err)
			}
			entries = append(entries, roomEntry{key: def.RefID, def: def})
		}
		return entries, nil
	case yaml.MappingNode:
		entries := make([]roomEntry, 0, len(m.Rooms.Content)/2)
		for i := 0; i+1 < len(m.Rooms.Content); i += 2 {
			key, n := m.Rooms.Content[i], m.Rooms.Content[i+1]
			var def RoomDef
			if err := n.Decode(&def); err != nil {
				return nil, fmt.Errorf("room %q: %w", key.Value, err)
			}
			entries = append(entries, roomEntry{key: key.Value, def: def})
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("rooms must be a list or a mapping, line %d", m.Rooms.Line)
	}
}
