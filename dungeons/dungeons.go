// Package dungeons holds the dungeon definitions built into the binary.
package dungeons

import _ "embed"

// Crypt is the dungeon played when no file is given
//
//go:embed crypt.yaml
var Crypt []byte
