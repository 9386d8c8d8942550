package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"tilesynth/internal/model"
)

// Wave line tuning: every generated line is PeriodCount cosine periods
// sampled CurveComplexity times per period.
const (
	CurveComplexity = 2
	PeriodCount     = 6
)

// GridSpacing returns the cell size of the polygon and point grids for
// a bound and point budget. It is zero only when the bound has zero
// width and zero height.
func GridSpacing(bound orb.Bound, pointCount int) float64 {
	width := bound.Max[0] - bound.Min[0]
	height := bound.Max[1] - bound.Min[1]
	cells := math.Ceil(math.Sqrt(float64(pointCount))) + 1
	return (width + height) / 4 / cells
}

// Generate synthesizes a feature collection for one tile: grid polygons
// in the bottom-left quadrant of the bound, one boundary ring line, grid
// points right of the horizontal center, and LineCount cosine wave
// lines. Aside from polygon radius jitter and per-feature color, the
// output is fully determined by the parameters; rng is the caller-owned
// random source, one per call.
func Generate(params model.GenerationParams, rng *rand.Rand) (*geojson.FeatureCollection, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation params: %w", err)
	}

	minLon, minLat := params.Bound.Min[0], params.Bound.Min[1]
	maxLon, maxLat := params.Bound.Max[0], params.Bound.Max[1]
	width := maxLon - minLon
	height := maxLat - minLat
	centerLon := minLon + width/2
	centerLat := minLat + height/2

	fc := geojson.NewFeatureCollection()

	gridSpacing := GridSpacing(params.Bound, params.PointCount)
	if gridSpacing <= 0 {
		// Zero-area bound: the grids would never advance, so only the
		// (degenerate) boundary line is emitted.
		fc.Append(colored(boundaryLine(params.Bound), rng))
		return fc, nil
	}

	// Polygons on a grid over the bottom-left quadrant.
	for lon := minLon + gridSpacing; lon <= centerLon; lon += gridSpacing {
		for lat := minLat + gridSpacing; lat <= centerLat; lat += gridSpacing {
			buffer := (0.3 + rng.Float64()*0.2) * gridSpacing
			fc.Append(colored(regularPolygon(lon, lat, buffer, params.VertexCount), rng))
		}
	}

	fc.Append(colored(boundaryLine(params.Bound), rng))

	// Points on the same grid, longitude band shifted past the center.
	// The latitude band is shared with the polygon grid.
	for lon := centerLon + gridSpacing; lon <= maxLon; lon += gridSpacing {
		for lat := minLat + gridSpacing; lat <= centerLat; lat += gridSpacing {
			fc.Append(colored(geojson.NewFeature(orb.Point{lon, lat}), rng))
		}
	}

	if params.LineCount > 0 {
		periodWidth := (width - 2*gridSpacing) / PeriodCount
		periodHeight := height / 20
		latitudeSpacing := (height/2 - 2*periodHeight) / float64(params.LineCount)

		for j := 0; j < params.LineCount; j++ {
			startLat := centerLat + periodHeight + float64(j)*latitudeSpacing
			line := make(orb.LineString, 0, PeriodCount*CurveComplexity)
			for i := 0; i < PeriodCount; i++ {
				periodStart := minLon + float64(i)*periodWidth + gridSpacing
				for k := 0; k < CurveComplexity; k++ {
					ratio := float64(k) / CurveComplexity
					line = append(line, orb.Point{
						periodStart + ratio*periodWidth,
						startLat + math.Cos(ratio*2*math.Pi)*periodHeight*0.5,
					})
				}
			}
			fc.Append(colored(geojson.NewFeature(line), rng))
		}
	}

	return fc, nil
}

// boundaryLine builds the closed 5-point corner trace of a bound.
func boundaryLine(b orb.Bound) *geojson.Feature {
	return geojson.NewFeature(orb.LineString{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
		{b.Min[0], b.Max[1]},
		{b.Min[0], b.Min[1]},
	})
}

// regularPolygon builds a closed n-sided ring of the given radius
// centered at (lon, lat), vertices at equal angular steps from angle 0.
func regularPolygon(lon, lat, radius float64, n int) *geojson.Feature {
	ring := make(orb.Ring, 0, n+1)
	for v := 0; v < n; v++ {
		angle := 2 * math.Pi * float64(v) / float64(n)
		ring = append(ring, orb.Point{
			lon + math.Cos(angle)*radius,
			lat + math.Sin(angle)*radius,
		})
	}
	ring = append(ring, ring[0])
	return geojson.NewFeature(orb.Polygon{ring})
}

// colored attaches a random rgb color property to a feature.
func colored(f *geojson.Feature, rng *rand.Rand) *geojson.Feature {
	f.Properties["color"] = fmt.Sprintf("rgb(%d,%d,%d)", rng.Intn(256), rng.Intn(256), rng.Intn(256))
	return f
}
