// Package kinematics defines the MotionModel interface for the towing vehicle,
// the rear-axle bicycle model that implements it, and the drawbar model that
// drags a trailer behind the tractor hitch.
//
// All motion is distance-stepped: there is no time or velocity state, each
// update moves the reference point a fixed arc length.
package kinematics

import "github.com/cxd309/sweptpath-engine/internal/geometry"

// Pose is a body reference point and its heading in radians.
type Pose struct {
	Position geometry.Point2D `json:"position"`
	Heading  float64          `json:"heading"`
}

// MotionModel is the contract the simulation loop drives the tractor through.
// Distances are metres, angles radians.
type MotionModel interface {
	// Wheelbase returns the distance between the steered and the reference axle.
	Wheelbase() float64

	// Advance moves pose dist metres with the given steering angle applied.
	Advance(pose Pose, steer, dist float64) Pose

	// FrontAxle returns the steered axle position for a reference pose.
	FrontAxle(pose Pose) geometry.Point2D
}
