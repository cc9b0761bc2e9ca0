package world

import "testing"

func TestGraph_DirectionInfo(t *testing.T) {
	g := mustParse(t, crossroadsYAML)
	tests := []struct {
		room RoomID
		want string
	}{
		{"room1", "There is a glade to the north."},
		{"room2", "There is a room to the south. There is a room to the east."},
		{"room3", "There are no exits from this room."},
	}
	for _, tt := range tests {
		if got := g.DirectionInfo(tt.room); got != tt.want {
			t.Errorf("DirectionInfo(%s) = %q, want %q", tt.room, got, tt.want)
		}
	}
}

func TestGraph_RoomImage(t *testing.T) {
	g := mustParse(t, crossroadsYAML)
	tests := []struct {
		room RoomID
		want string
	}{
		{"room1", "/img/forest.webp"},
		{"room3", "/img/vault.webp"},
		{"nowhere", DefaultRoomImage},
	}
	for _, tt := range tests {
		if got := g.RoomImage(tt.room); got != tt.want {
			t.Errorf("RoomImage(%s) = %q, want %q", tt.room, got, tt.want)
		}
	}

	plain := mustParse(t, "map:\n  rooms:\n    - room_ref_id: hall\n")
	if got := plain.RoomImage("hall"); got != DefaultRoomImage {
		t.Errorf("RoomImage(hall) = %q, want %q", got, DefaultRoomImage)
	}
}

func TestGraph_RoomCopiesDoNotLeak(t *testing.T) {
	g := mustParse(t, crossroadsYAML)
	room, _ := g.Room("room2")
	room.Treasures[0] = "stolen"
	room.IsLocked = true

	again, _ := g.Room("room2")
	if again.Treasures[0] != "sword" {
		t.Errorf("Room(room2).Treasures[0] = %q after mutating a copy, want sword", again.Treasures[0])
	}
	if again.IsLocked {
		t.Error("Room(room2).IsLocked = true after mutating a copy, want false")
	}
}

func TestGraph_RoomsWithinDistance(t *testing.T) {
	g := mustParse(t, crossroadsYAML)

	got := g.RoomsWithinDistance("room1", 1)
	if len(got) != 1 || got[0] != (RoomDistance{Room: "room2", Distance: 1}) {
		t.Errorf("RoomsWithinDistance(room1, 1) = %v, want [{room2 1}]", got)
	}

	got = g.RoomsWithinDistance("room1", 5)
	want := []RoomDistance{{"room2", 1}, {"room3", 2}}
	if len(got) != len(want) {
		t.Fatalf("RoomsWithinDistance(room1, 5) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RoomsWithinDistance(room1, 5)[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := g.RoomsWithinDistance("missing", 3); got != nil {
		t.Errorf("RoomsWithinDistance(missing, 3) = %v, want nil", got)
	}
}
