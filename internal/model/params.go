package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// GenerationParams describes one synthesis request: how many features of
// each kind to target and the geographic bounds to fill. Built fresh per
// tile request, never persisted.
type GenerationParams struct {
	PointCount   int
	PolygonCount int
	LineCount    int
	VertexCount  int
	Bound        orb.Bound
}

// Validate checks the parameter contract. It must pass before any
// geometry is built so a failure never leaves a partial collection.
func (p GenerationParams) Validate() error {
	if p.PointCount < 0 || p.PolygonCount < 0 || p.LineCount < 0 {
		return fmt.Errorf("feature counts must be non-negative, got points=%d polygons=%d lines=%d",
			p.PointCount, p.PolygonCount, p.LineCount)
	}
	if p.VertexCount < 3 {
		return fmt.Errorf("polygon vertex count must be at least 3, got %d", p.VertexCount)
	}
	coords := []float64{p.Bound.Min[0], p.Bound.Min[1], p.Bound.Max[0], p.Bound.Max[1]}
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("bounding box coordinates must be finite")
		}
	}
	if p.Bound.Min[0] > p.Bound.Max[0] || p.Bound.Min[1] > p.Bound.Max[1] {
		return errors.New("bounding box min must not exceed max")
	}
	return nil
}
