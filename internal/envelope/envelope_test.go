package envelope_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cxd309/sweptpath-engine/internal/envelope"
	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/vehicle"
)

func assertPoint(t *testing.T, want, got geometry.Point2D, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msg+" x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, msg+" y")
}

func TestProject_TractorAtOrigin(t *testing.T) {
	cfg := vehicle.Config{Wheelbase: 4, FrontOverhang: 1, RearOverhang: 1, Width: 2}
	c := envelope.Project(geometry.Point2D{}, 0, envelope.TractorExtents(cfg))

	assertPoint(t, geometry.Point2D{X: 5, Y: 1}, c.FL, "front-left")
	assertPoint(t, geometry.Point2D{X: 5, Y: -1}, c.FR, "front-right")
	assertPoint(t, geometry.Point2D{X: -1, Y: 1}, c.RL, "rear-left")
	assertPoint(t, geometry.Point2D{X: -1, Y: -1}, c.RR, "rear-right")
}

func TestProject_RotatedAndTranslated(t *testing.T) {
	ext := envelope.Extents{Front: 3, Rear: -1, Width: 2}
	c := envelope.Project(geometry.Point2D{X: 10, Y: 5}, math.Pi/2, ext)

	// Facing +Y: left is -X.
	assertPoint(t, geometry.Point2D{X: 9, Y: 8}, c.FL, "front-left")
	assertPoint(t, geometry.Point2D{X: 11, Y: 8}, c.FR, "front-right")
	assertPoint(t, geometry.Point2D{X: 9, Y: 4}, c.RL, "rear-left")
	assertPoint(t, geometry.Point2D{X: 11, Y: 4}, c.RR, "rear-right")
}

func TestProject_IsPure(t *testing.T) {
	ext := envelope.Extents{Front: 2.2, Rear: -0.7, Width: 1.9}
	a := envelope.Project(geometry.Point2D{X: 1.5, Y: -2}, 0.83, ext)
	b := envelope.Project(geometry.Point2D{X: 1.5, Y: -2}, 0.83, ext)
	assert.Equal(t, a, b)
}

func TestTrailerExtents_Variants(t *testing.T) {
	tr := vehicle.TrailerConfig{Kind: vehicle.TrailerStandard, Wheelbase: 8, FrontOverhang: 1.5, RearOverhang: 3, Width: 2.5}
	std := envelope.TrailerExtents(tr)
	assert.Equal(t, envelope.Extents{Front: 9.5, Rear: -3, Width: 2.5}, std)

	tr.Kind = vehicle.TrailerPole
	pole := envelope.TrailerExtents(tr)
	assert.Equal(t, envelope.Extents{Front: 1.5, Rear: -3, Width: 2.5}, pole)
	assert.Equal(t, std.Rear, pole.Rear, "rear corners do not depend on the body variant")
}
