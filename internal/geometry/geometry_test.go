package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/sweptpath-engine/internal/geometry"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{4*math.Pi + 0.5, 0.5},
		{0.25, 0.25},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, geometry.NormalizeAngle(c.in), 1e-12, "NormalizeAngle(%v)", c.in)
	}
}

func TestPathLengthAndHeading(t *testing.T) {
	p := geometry.Path{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}
	assert.InDelta(t, 11.0, p.Length(), 1e-12)

	h, ok := p.StartHeading()
	require.True(t, ok)
	assert.InDelta(t, math.Atan2(4, 3), h, 1e-12)
}

func TestStartHeadingSkipsDuplicateLeadingPoints(t *testing.T) {
	p := geometry.Path{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 5}}
	h, ok := p.StartHeading()
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, h, 1e-12)

	_, ok = geometry.Path{{X: 2, Y: 2}, {X: 2, Y: 2}}.StartHeading()
	assert.False(t, ok, "coincident points have no heading")
}

func TestPathValidateRejectsNonFinite(t *testing.T) {
	p := geometry.Path{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}}
	assert.ErrorIs(t, p.Validate(), geometry.ErrInvalidPath)

	p = geometry.Path{{X: math.Inf(1), Y: 0}, {X: 1, Y: 1}}
	assert.ErrorIs(t, p.Validate(), geometry.ErrInvalidPath)
}

func TestOffset(t *testing.T) {
	p := geometry.Point2D{X: 1, Y: 1}.Offset(math.Pi/2, -2)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, -1.0, p.Y, 1e-12)
}
