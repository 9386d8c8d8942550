package model

import "github.com/paulmach/orb/maptile"

// Tile is one served tile: its grid address plus the decoded feature
// payload attached by the tile service. Features stays nil until the
// full payload is ready.
type Tile struct {
	Coord    maptile.Tile
	Features []byte
}
