// Package sweep turns a trajectory into the polylines consumed by renderers
// and CAD exporters: swept envelopes of the body corners and the wheel paths
// of each axle, grouped into named layers. It does no file encoding.
package sweep

import (
	"math"

	"github.com/samber/lo"

	"github.com/cxd309/sweptpath-engine/internal/engine"
	"github.com/cxd309/sweptpath-engine/internal/geometry"
)

// Layer names used by the export stage.
const (
	LayerEnvelopeTractor  = "ENVELOPE_TRACTOR"
	LayerEnvelopeTrailer  = "ENVELOPE_TRAILER"
	LayerWheelPathTractor = "WHEEL_PATH_TRACTOR"
	LayerWheelPathTrailer = "WHEEL_PATH_TRAILER"
)

// Polyline is an ordered run of points.
type Polyline []geometry.Point2D

// Segments returns the number of line segments in the polyline.
func (p Polyline) Segments() int { return max(len(p)-1, 0) }

// Layer is a named group of polylines.
type Layer struct {
	Name      string     `json:"name"`
	Polylines []Polyline `json:"polylines"`
}

// Layers groups the trajectory into envelope and wheel-path layers.
//
// The tractor envelope always carries the front corners. Its rear corners
// are included only without a trailer; with one, the trailer rear corners
// bound the sweep instead and go to the trailer envelope layer. Trailer
// layers are omitted when no state carries a trailer.
func Layers(states engine.Trajectory) []Layer {
	if len(states) == 0 {
		return nil
	}
	hasTrailer := states[0].Trailer != nil

	trace := func(f func(s engine.VehicleState) geometry.Point2D) Polyline {
		return lo.Map(states, func(s engine.VehicleState, _ int) geometry.Point2D { return f(s) })
	}

	envTractor := Layer{Name: LayerEnvelopeTractor, Polylines: []Polyline{
		trace(func(s engine.VehicleState) geometry.Point2D { return s.Envelope.Tractor.FL }),
		trace(func(s engine.VehicleState) geometry.Point2D { return s.Envelope.Tractor.FR }),
	}}
	wheelTractor := Layer{Name: LayerWheelPathTractor, Polylines: []Polyline{
		trace(func(s engine.VehicleState) geometry.Point2D { return s.Position }),
	}}

	if !hasTrailer {
		envTractor.Polylines = append(envTractor.Polylines,
			trace(func(s engine.VehicleState) geometry.Point2D { return s.Envelope.Tractor.RL }),
			trace(func(s engine.VehicleState) geometry.Point2D { return s.Envelope.Tractor.RR }),
		)
		return []Layer{envTractor, wheelTractor}
	}

	envTrailer := Layer{Name: LayerEnvelopeTrailer, Polylines: []Polyline{
		trace(func(s engine.VehicleState) geometry.Point2D { return s.Envelope.Trailer.RL }),
		trace(func(s engine.VehicleState) geometry.Point2D { return s.Envelope.Trailer.RR }),
	}}
	wheelTrailer := Layer{Name: LayerWheelPathTrailer, Polylines: []Polyline{
		trace(func(s engine.VehicleState) geometry.Point2D { return s.Trailer.Position }),
	}}
	return []Layer{envTractor, envTrailer, wheelTractor, wheelTrailer}
}

// Snapshots returns every n-th state plus the last one, for drawing vehicle
// bodies along the trajectory. n < 1 is treated as 1.
func Snapshots(states engine.Trajectory, every int) engine.Trajectory {
	if len(states) == 0 {
		return nil
	}
	every = max(every, 1)
	out := lo.Filter(states, func(_ engine.VehicleState, i int) bool { return i%every == 0 })
	if (len(states)-1)%every != 0 {
		out = append(out, states[len(states)-1])
	}
	return out
}

// OffTracking returns the largest distance between a trailer axle position
// and the tractor rear-axle wheel path. Trailer positions that have not yet
// reached the start of the tractor trace are skipped. It is 0 without a
// trailer.
func OffTracking(states engine.Trajectory) float64 {
	if len(states) < 2 || states[0].Trailer == nil {
		return 0
	}
	rear := lo.Map(states, func(s engine.VehicleState, _ int) geometry.Point2D { return s.Position })
	start, dir := rear[0], rear[1].Sub(rear[0])

	var worst float64
	for _, s := range states {
		ap := s.Trailer.Position.Sub(start)
		if ap.X*dir.X+ap.Y*dir.Y < 0 {
			continue
		}
		worst = math.Max(worst, distanceToPolyline(s.Trailer.Position, rear))
	}
	return worst
}

func distanceToPolyline(p geometry.Point2D, line []geometry.Point2D) float64 {
	best := math.Inf(1)
	for i := 1; i < len(line); i++ {
		best = math.Min(best, distanceToSegment(p, line[i-1], line[i]))
	}
	return best
}

func distanceToSegment(p, a, b geometry.Point2D) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return geometry.Distance(p, a)
	}
	ap := p.Sub(a)
	t := lo.Clamp((ap.X*ab.X+ap.Y*ab.Y)/l2, 0, 1)
	return geometry.Distance(p, a.Add(ab.Scale(t)))
}
