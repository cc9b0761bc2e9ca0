package world

import "testing"

const crossroadsYAML = `
scenario:
  name: Crossroads
  welcome_message: Welcome, traveller.
themes:
  - name: Forest
    type: exterior
    default_img: /img/forest.webp
  - name: crypt
    type: underground
map:
  rooms:
    - room_ref_id: Room1
      name: Clearing
      description: A quiet clearing.
      theme: forest
    - room_ref_id: room2
      name: Old Oak
      description: A huge oak.
      theme: forest
      room_type: Glade
      treasures:
        - name: sword
          aliases: [blade]
          type: weapon
    - room_ref_id: room3
      name: Vault
      theme: crypt
      is_locked: true
      room_img: /img/vault.webp
  connections:
    room1:
      north: room2
    room2:
      s: room1
      east: ROOM3
`

// mustParse parses a definition and fails the test on error
func mustParse(t *testing.T, doc string) *Graph {
	t.Helper()
	g, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return g
}
