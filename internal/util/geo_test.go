package util

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestHaversineDistanceOneDegreeAtEquator(t *testing.T) {
	// One degree of longitude at the equator is roughly 111.2 km.
	got := HaversineDistance(0, 0, 0, 1)
	want := 2 * math.Pi * earthRadiusMeters / 360
	if math.Abs(got-want) > 100 {
		t.Errorf("Expected ~%.0f m, got %.0f m", want, got)
	}
}

func TestHaversineDistanceZero(t *testing.T) {
	if d := HaversineDistance(45, 45, 45, 45); d != 0 {
		t.Errorf("Expected zero distance for identical points, got %f", d)
	}
}

func TestGroundSpanMetersDegenerateBound(t *testing.T) {
	b := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{0, 0}}
	if d := GroundSpanMeters(b); d != 0 {
		t.Errorf("Expected zero span for degenerate bound, got %f", d)
	}
}

func TestGroundSpanMetersPositive(t *testing.T) {
	b := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}
	if d := GroundSpanMeters(b); d <= 0 {
		t.Errorf("Expected positive span, got %f", d)
	}
}
