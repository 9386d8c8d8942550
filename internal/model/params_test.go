package model

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func validParams() GenerationParams {
	return GenerationParams{
		PointCount:   4,
		PolygonCount: 4,
		LineCount:    2,
		VertexCount:  4,
		Bound:        orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}},
	}
}

func TestValidateAcceptsValidParams(t *testing.T) {
	if err := validParams().Validate(); err != nil {
		t.Errorf("Expected valid params to pass, got %v", err)
	}
}

func TestValidateAcceptsZeroCounts(t *testing.T) {
	p := validParams()
	p.PointCount = 0
	p.PolygonCount = 0
	p.LineCount = 0
	if err := p.Validate(); err != nil {
		t.Errorf("Expected zero counts to pass, got %v", err)
	}
}

func TestValidateAcceptsZeroAreaBound(t *testing.T) {
	p := validParams()
	p.Bound = orb.Bound{Min: orb.Point{3, 3}, Max: orb.Point{3, 3}}
	if err := p.Validate(); err != nil {
		t.Errorf("Expected zero-area bound to pass, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationParams)
	}{
		{"negative point count", func(p *GenerationParams) { p.PointCount = -1 }},
		{"negative polygon count", func(p *GenerationParams) { p.PolygonCount = -5 }},
		{"negative line count", func(p *GenerationParams) { p.LineCount = -2 }},
		{"two vertices", func(p *GenerationParams) { p.VertexCount = 2 }},
		{"zero vertices", func(p *GenerationParams) { p.VertexCount = 0 }},
		{"nan coordinate", func(p *GenerationParams) { p.Bound.Min[0] = math.NaN() }},
		{"infinite coordinate", func(p *GenerationParams) { p.Bound.Max[1] = math.Inf(1) }},
		{"min lon above max lon", func(p *GenerationParams) { p.Bound.Min[0] = 20 }},
		{"min lat above max lat", func(p *GenerationParams) { p.Bound.Min[1] = 20 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}
