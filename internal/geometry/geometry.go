// Package geometry provides the planar point and path types used by the
// swept-path engine, along with arc-length resampling of user-drawn paths.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidPath is returned when a path contains non-finite coordinates.
	ErrInvalidPath = errors.New("geometry: invalid path")
	// ErrInvalidStep is returned when a resampling step is not a positive finite number.
	ErrInvalidStep = errors.New("geometry: invalid step size")
)

// Point2D is a 2D position in metres, world frame.
type Point2D struct {
	X float64 `json:"x"` // metres
	Y float64 `json:"y"` // metres
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D { return Point2D{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D { return Point2D{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point2D) Scale(k float64) Point2D { return Point2D{X: p.X * k, Y: p.Y * k} }

// Offset returns the point dist metres from p along heading (radians).
// A negative dist moves backward.
func (p Point2D) Offset(heading, dist float64) Point2D {
	return Point2D{X: p.X + dist*math.Cos(heading), Y: p.Y + dist*math.Sin(heading)}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point2D) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

// Heading returns the direction from a to b in radians.
func Heading(a, b Point2D) float64 { return math.Atan2(b.Y-a.Y, b.X-a.X) }

// NormalizeAngle wraps a into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Path is an ordered polyline; insertion order is the direction of travel.
type Path []Point2D

// Length returns the total polyline length in metres.
func (p Path) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += Distance(p[i-1], p[i])
	}
	return total
}

// Validate returns an error if any point has a NaN or infinite coordinate.
func (p Path) Validate() error {
	for i, pt := range p {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			return fmt.Errorf("%w: point %d (%v, %v) is not finite", ErrInvalidPath, i, pt.X, pt.Y)
		}
	}
	return nil
}

// StartHeading returns the direction of the first segment with non-zero length.
// ok is false when every point coincides.
func (p Path) StartHeading() (heading float64, ok bool) {
	for i := 1; i < len(p); i++ {
		if Distance(p[0], p[i]) > 0 {
			return Heading(p[0], p[i]), true
		}
	}
	return 0, false
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
