package kinematics

import (
	"math"

	"github.com/cxd309/sweptpath-engine/internal/geometry"
)

// Bicycle implements MotionModel as a single-track kinematic model referenced
// to the rear axle. It has no slip and no velocity state.
type Bicycle struct {
	WheelbaseVal float64 // metres, > 0
}

// NewBicycle returns a Bicycle with the given wheelbase.
func NewBicycle(wheelbase float64) Bicycle { return Bicycle{WheelbaseVal: wheelbase} }

func (b Bicycle) Wheelbase() float64 { return b.WheelbaseVal }

// Advance applies one explicit Euler step over arc length dist:
//
//	x' = x + d·cos(θ)
//	y' = y + d·sin(θ)
//	θ' = θ + (d/L)·tan(δ)
func (b Bicycle) Advance(pose Pose, steer, dist float64) Pose {
	return Pose{
		Position: pose.Position.Offset(pose.Heading, dist),
		Heading:  pose.Heading + (dist/b.WheelbaseVal)*math.Tan(steer),
	}
}

func (b Bicycle) FrontAxle(pose Pose) geometry.Point2D {
	return pose.Position.Offset(pose.Heading, b.WheelbaseVal)
}

// TurningRadius returns the rear-axle turning radius for a steering angle.
// A zero angle yields +Inf.
func (b Bicycle) TurningRadius(steer float64) float64 {
	t := math.Tan(math.Abs(steer))
	if t == 0 {
		return math.Inf(1)
	}
	return b.WheelbaseVal / t
}
