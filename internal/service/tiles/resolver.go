package tiles

import (
	"log"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/project"

	"tilesynth/internal/util"
)

// TileGrid resolves a tile coordinate to a planar (EPSG:3857) extent.
// ok is false when the grid cannot place the tile.
type TileGrid interface {
	Extent(z, x, y uint32) (extent orb.Bound, ok bool)
}

// MercatorGrid is the standard XYZ web-mercator tile grid.
type MercatorGrid struct{}

// Extent returns the planar extent of a tile.
func (MercatorGrid) Extent(z, x, y uint32) (orb.Bound, bool) {
	tile := maptile.New(x, y, maptile.Zoom(z))
	return project.Bound(tile.Bound(), project.WGS84.ToMercator), true
}

// Resolver maps tile coordinates to geographic bounding boxes in
// degrees. A missing grid degrades to the zero planar extent, which
// reprojects to a degenerate bbox, instead of failing the request.
type Resolver struct {
	grid TileGrid
}

// NewResolver creates a resolver over the given grid; nil is allowed.
func NewResolver(grid TileGrid) *Resolver {
	return &Resolver{grid: grid}
}

// Resolve returns the geographic bounding box of a tile.
func (r *Resolver) Resolve(z, x, y uint32) orb.Bound {
	extent := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{0, 0}}
	if r.grid != nil {
		if e, ok := r.grid.Extent(z, x, y); ok {
			extent = e
		}
	}

	bound := project.Bound(extent, project.Mercator.ToWGS84)
	log.Printf("Resolved tile %d/%d/%d to bbox [%f, %f, %f, %f] (span %.0f m)",
		z, x, y, bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1],
		util.GroundSpanMeters(bound))

	return bound
}
