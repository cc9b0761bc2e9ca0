package world

import "strings"

// RoomID is the reference id of a room, always lower case
type RoomID string

// DefaultRoomImage is shown for rooms and themes without an image
const DefaultRoomImage = "/static/img/interface/default_room.webp"

// Room is a node of the world graph
type Room struct {
	ID          RoomID
	Name        string
	Description string
	Theme       string
	Type        string
	IsDark      bool
	IsLocked    bool
	NPCs        []string
	Treasures   []ItemID
	Traps       []string
	Image       string
}

// TypeName returns the room type for prose, or "room" when untyped
func (r *Room) TypeName() string {
	if t := strings.ToLower(strings.TrimSpace(r.Type)); t != "" {
		return t
	}
	return "room"
}

func (r *Room) clone() *Room {
	c := *r
	c.NPCs = append([]string(nil), r.NPCs...)
	c.Treasures = append([]ItemID(nil), r.Treasures...)
	c.Traps = append([]string(nil), r.Traps...)
	return &c
}
