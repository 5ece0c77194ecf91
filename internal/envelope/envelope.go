// Package envelope projects the body corners of the tractor and trailer into
// world coordinates. Corners are a pure function of the body's axle pose and
// its extents; nothing is cached between states.
package envelope

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/vehicle"
)

// Corners holds the four world-frame corners of a rectangular body.
type Corners struct {
	FL geometry.Point2D `json:"fl"`
	FR geometry.Point2D `json:"fr"`
	RL geometry.Point2D `json:"rl"`
	RR geometry.Point2D `json:"rr"`
}

// Extents are the body outline relative to its axle, in the body frame.
// Front and Rear are signed longitudinal offsets (forward positive), so a
// body overhanging behind its axle has a negative Rear.
type Extents struct {
	Front float64
	Rear  float64
	Width float64
}

// Project rotates the local corners (Front, ±Width/2) and (Rear, ±Width/2) by
// heading and translates them to axle.
func Project(axle geometry.Point2D, heading float64, ext Extents) Corners {
	rot := mgl64.Rotate2D(heading)
	origin := mgl64.Vec2{axle.X, axle.Y}
	halfW := ext.Width / 2

	world := func(lx, ly float64) geometry.Point2D {
		v := rot.Mul2x1(mgl64.Vec2{lx, ly}).Add(origin)
		return geometry.Point2D{X: v.X(), Y: v.Y()}
	}
	return Corners{
		FL: world(ext.Front, halfW),
		FR: world(ext.Front, -halfW),
		RL: world(ext.Rear, halfW),
		RR: world(ext.Rear, -halfW),
	}
}

// TractorExtents returns the tractor outline about its rear axle.
func TractorExtents(cfg vehicle.Config) Extents {
	return Extents{
		Front: cfg.Wheelbase + cfg.FrontOverhang,
		Rear:  -cfg.RearOverhang,
		Width: cfg.Width,
	}
}

// TrailerExtents returns the trailer outline about its axle. A standard
// trailer box reaches forward past the hitch by its front overhang; a pole
// trailer body is only the rear bogie, the pole itself carries no width.
func TrailerExtents(t vehicle.TrailerConfig) Extents {
	front := t.Wheelbase + t.FrontOverhang
	if t.IsPoleTrailer() {
		front = t.FrontOverhang
	}
	return Extents{
		Front: front,
		Rear:  -t.RearOverhang,
		Width: t.Width,
	}
}
