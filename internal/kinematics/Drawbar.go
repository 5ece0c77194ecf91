package kinematics

import "github.com/cxd309/sweptpath-engine/internal/geometry"

// hitchEpsilon is the hitch-to-axle distance below which the trailer keeps
// its previous heading.
const hitchEpsilon = 1e-3

// Drawbar drags a trailer axle behind the tractor hitch point. The trailer
// heading snaps toward the hitch each step, which is the low-speed
// off-tracking approximation rather than an integration of trailer yaw rate.
// Standard and pole trailers share this model.
type Drawbar struct {
	Wheelbase   float64 // hitch to trailer axle, metres
	HitchOffset float64 // tractor rear axle to hitch, positive = behind
}

// Hitch returns the articulation point for a tractor rear-axle pose.
func (d Drawbar) Hitch(tractor Pose) geometry.Point2D {
	return tractor.Position.Offset(tractor.Heading, -d.HitchOffset)
}

// Follow returns the trailer pose after the tractor has moved to tractor.
func (d Drawbar) Follow(tractor, trailer Pose) Pose {
	hitch := d.Hitch(tractor)
	heading := trailer.Heading
	if geometry.Distance(trailer.Position, hitch) > hitchEpsilon {
		heading = geometry.Heading(trailer.Position, hitch)
	}
	return Pose{
		Position: hitch.Offset(heading, -d.Wheelbase),
		Heading:  heading,
	}
}

// Initial returns the trailer pose in line with a stationary tractor.
func (d Drawbar) Initial(tractor Pose) Pose {
	hitch := d.Hitch(tractor)
	return d.Follow(tractor, Pose{
		Position: hitch.Offset(tractor.Heading, -d.Wheelbase),
		Heading:  tractor.Heading,
	})
}
