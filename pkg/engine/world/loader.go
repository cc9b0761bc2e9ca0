package world

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates a dungeon definition from disk
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dungeon %s: %w", path, err)
	}
	return Parse(data)
}

// Load reads and validates a dungeon definition from r
func Load(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dungeon: %w", err)
	}
	return Parse(data)
}

// Parse validates a YAML or JSON dungeon definition and builds its Graph.
// Any unresolved reference fails the whole load with a *LoadError.
func Parse(data []byte) (*Graph, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, loadError(ErrMalformed, "", "empty document")
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, loadError(ErrMalformed, "", err.Error())
	}
	return Build(&def)
}

// Build validates an already decoded definition and builds its Graph
func Build(def *Definition) (*Graph, error) {
	entries, err := def.Map.decodeRooms()
	if err != nil {
		return nil, loadError(ErrMalformed, "", err.Error())
	}
	if len(entries) == 0 {
		return nil, loadError(ErrNoRooms, "", "")
	}

	g := &Graph{
		scenario: buildScenario(def.Scenario),
		themes:   make(map[string]*Theme),
		rooms:    make(map[RoomID]*Room, len(entries)),
		exits:    make(map[RoomID]map[Direction]RoomID, len(entries)),
		items:    make(map[ItemID]*Item),
	}

	if err := g.addThemes(def.Themes); err != nil {
		return nil, err
	}
	if err := g.addRooms(entries); err != nil {
		return nil, err
	}
	if err := g.addConnections(def.Map.Connections); err != nil {
		return nil, err
	}
	if err := g.checkUnlocks(); err != nil {
		return nil, err
	}

	g.entry = g.roomOrder[0]
	if start := normalizeRef(def.Map.StartRoom); start != "" {
		if !g.HasRoom(RoomID(start)) {
			return nil, loadError(ErrUnknownRoom, start, "start_room")
		}
		g.entry = RoomID(start)
	}

	for _, ref := range def.Map.VisitedRooms {
		id := RoomID(normalizeRef(ref))
		if !g.HasRoom(id) {
			return nil, loadError(ErrUnknownRoom, ref, "visited_rooms")
		}
		g.visited = append(g.visited, id)
	}

	g.buildDirectionInfo()
	return g, nil
}

// displayName turns an id like "great_hall" into "Great Hall"
func displayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '_' || r == '-' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func normalizeRef(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}

func buildScenario(def *ScenarioDef) Scenario {
	s := DefaultScenario()
	if def == nil {
		return s
	}
	if def.Name != "" {
		s.Name = def.Name
	}
	if def.Description != "" {
		s.Description = def.Description
	}
	if def.WelcomeMessage != "" {
		s.WelcomeMessage = def.WelcomeMessage
	}
	if def.Difficulty != "" {
		s.Difficulty = def.Difficulty
	}
	return s
}

func (g *Graph) addThemes(defs []ThemeDef) error {
	if len(defs) == 0 {
		defs = []ThemeDef{{Name: DefaultThemeName, Description: "A default themed area"}}
	}
	for _, td := range defs {
		name := normalizeRef(td.Name)
		if name == "" {
			name = DefaultThemeName
		}
		if _, dup := g.themes[name]; dup {
			return loadError(ErrDuplicateTheme, name, "themes")
		}
		desc := td.Description
		if desc == "" {
			desc = fmt.Sprintf("A %s themed area", name)
		}
		g.themes[name] = &Theme{
			Name:         name,
			Description:  desc,
			Category:     ParseCategory(td.Type),
			Icon:         td.Icon,
			Music:        td.Music,
			DefaultImage: td.DefaultImage,
		}
		g.themeOrder = append(g.themeOrder, name)
	}
	return nil
}

func (g *Graph) addRooms(entries []roomEntry) error {
	explicit := mapset.New[ItemID]()
	for _, e := range entries {
		for _, td := range e.def.Treasures {
			if id := normalizeRef(td.ID); id != "" {
				explicit.Put(ItemID(id))
			}
		}
	}

	for _, e := range entries {
		id := RoomID(normalizeRef(e.key))
		if id == "" {
			return loadError(ErrMissingRoomID, e.def.Name, "rooms")
		}
		if ref := normalizeRef(e.def.RefID); ref != "" && RoomID(ref) != id {
			return loadError(ErrMalformed, e.def.RefID, fmt.Sprintf("room %s (room_ref_id does not match its key)", id))
		}
		if g.HasRoom(id) {
			return loadError(ErrDuplicateRoom, string(id), "rooms")
		}

		theme := normalizeRef(e.def.Theme)
		if theme == "" {
			theme = DefaultThemeName
		}
		if _, ok := g.themes[theme]; !ok {
			return loadError(ErrUnknownTheme, theme, "room "+string(id))
		}

		room := &Room{
			ID:          id,
			Name:        e.def.Name,
			Description: e.def.Description,
			Theme:       theme,
			Type:        strings.ToLower(strings.TrimSpace(e.def.RoomType)),
			IsDark:      e.def.IsDark,
			IsLocked:    e.def.IsLocked,
			NPCs:        append([]string(nil), e.def.NPCs...),
			Traps:       append([]string(nil), e.def.Traps...),
			Image:       e.def.Image,
		}
		if room.Name == "" {
			room.Name = displayName(string(id))
		}

		for _, td := range e.def.Treasures {
			item, err := g.addItem(td, id, explicit)
			if err != nil {
				return err
			}
			room.Treasures = append(room.Treasures, item.ID)
		}

		g.rooms[id] = room
		g.roomOrder = append(g.roomOrder, id)
	}
	return nil
}

// addItem registers a treasure found in room. Only ids written in the
// document must be unique; an id derived from the name gets a numeric
// suffix when the name is already taken.
func (g *Graph) addItem(td TreasureDef, room RoomID, explicit mapset.Set[ItemID]) (*Item, error) {
	id := ItemID(normalizeRef(td.ID))
	if id != "" {
		if _, dup := g.items[id]; dup {
			return nil, loadError(ErrDuplicateItem, string(id), "room "+string(room))
		}
	} else {
		base := normalizeRef(td.Name)
		if base == "" {
			return nil, loadError(ErrMalformed, "", "treasure without a name in room "+string(room))
		}
		id = ItemID(base)
		for n := 2; g.items[id] != nil || explicit.Has(id); n++ {
			id = ItemID(fmt.Sprintf("%s_%d", base, n))
		}
	}

	name := strings.TrimSpace(td.Name)
	if name == "" {
		name = string(id)
	}
	itemType := strings.ToLower(strings.TrimSpace(td.Type))
	if itemType == "" {
		itemType = "treasure"
	}

	item := &Item{
		ID:          id,
		Name:        name,
		Aliases:     append([]string(nil), td.Aliases...),
		Type:        itemType,
		Description: td.Description,
		Unlocks:     RoomID(normalizeRef(td.Unlocks)),
	}
	g.items[id] = item
	return item, nil
}

func (g *Graph) addConnections(conns map[string]map[string]string) error {
	sources := make([]string, 0, len(conns))
	for from := range conns {
		sources = append(sources, from)
	}
	sort.Strings(sources)

	for _, rawFrom := range sources {
		from := RoomID(normalizeRef(rawFrom))
		if !g.HasRoom(from) {
			return loadError(ErrUnknownRoom, rawFrom, "connections")
		}

		dirs := make([]string, 0, len(conns[rawFrom]))
		for d := range conns[rawFrom] {
			dirs = append(dirs, d)
		}
		sort.Strings(dirs)

		where := "connections of " + string(from)
		for _, rawDir := range dirs {
			dir, ok := ParseDirection(rawDir)
			if !ok {
				return loadError(ErrUnknownDirection, rawDir, where)
			}
			rawTo := conns[rawFrom][rawDir]
			to := RoomID(normalizeRef(rawTo))
			if !g.HasRoom(to) {
				return loadError(ErrUnknownRoom, rawTo, where)
			}
			if g.exits[from] == nil {
				g.exits[from] = make(map[Direction]RoomID)
			}
			if _, dup := g.exits[from][dir]; dup {
				return loadError(ErrMalformed, rawDir, where+" (direction given twice)")
			}
			g.exits[from][dir] = to
		}
	}
	return nil
}

func (g *Graph) checkUnlocks() error {
	for _, id := range g.Items() {
		item := g.items[id]
		if item.Unlocks != "" && !g.HasRoom(item.Unlocks) {
			return loadError(ErrUnknownRoom, string(item.Unlocks), "unlocks of item "+string(id))
		}
	}
	return nil
}
