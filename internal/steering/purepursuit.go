// Package steering implements a pure-pursuit path follower for the tractor.
//
// The controller aims the rear axle at a sample a fixed lookahead distance
// ahead on the resampled path. Its cursor only moves forward, so samples the
// vehicle has already passed are never chased again, which keeps looping
// paths from short-circuiting back to their start.
package steering

import (
	"math"

	"github.com/samber/lo"

	"github.com/cxd309/sweptpath-engine/internal/geometry"
)

const (
	// MinLookahead is the lookahead floor in metres. Short wheelbases
	// oscillate without it.
	MinLookahead = 2.0

	// targetEpsilon is the rear-axle-to-target distance treated as zero.
	targetEpsilon = 1e-9
)

// Command is the output of one controller evaluation.
type Command struct {
	Angle       float64          // applied steering angle, radians, clamped
	Target      geometry.Point2D // lookahead point
	TargetIndex int              // index of Target in the path
}

// PurePursuit tracks a resampled path. It is stateful (cursor and last angle)
// and belongs to a single simulation run.
type PurePursuit struct {
	wheelbase float64
	maxSteer  float64
	lookahead float64
	path      geometry.Path
	cursor    int
	last      float64
}

// New returns a controller for a vehicle with the given wheelbase and
// steering limit following path. path must be non-empty.
func New(wheelbase, maxSteer float64, path geometry.Path) *PurePursuit {
	return &PurePursuit{
		wheelbase: wheelbase,
		maxSteer:  maxSteer,
		lookahead: math.Max(wheelbase, MinLookahead),
		path:      path,
	}
}

// Lookahead returns the lookahead distance in metres.
func (p *PurePursuit) Lookahead() float64 { return p.lookahead }

// Cursor returns the index the next target search starts from.
func (p *PurePursuit) Cursor() int { return p.cursor }

// Steer selects the lookahead target for a rear axle at rear with the given
// heading and returns the clamped steering angle toward it.
func (p *PurePursuit) Steer(rear geometry.Point2D, heading float64) Command {
	idx := p.findTarget(rear)
	target := p.path[idx]

	dist := geometry.Distance(rear, target)
	angle := p.last
	if dist > targetEpsilon {
		alpha := geometry.NormalizeAngle(geometry.Heading(rear, target) - heading)
		angle = math.Atan(2 * p.wheelbase * math.Sin(alpha) / dist)
	}
	angle = lo.Clamp(angle, -p.maxSteer, p.maxSteer)
	p.last = angle

	return Command{Angle: angle, Target: target, TargetIndex: idx}
}

// findTarget scans forward from the cursor for the first sample at least
// the lookahead distance away. When none is left, the final sample is used
// and the cursor parks on it.
func (p *PurePursuit) findTarget(rear geometry.Point2D) int {
	for i := p.cursor; i < len(p.path); i++ {
		if geometry.Distance(rear, p.path[i]) >= p.lookahead {
			p.cursor = i
			return i
		}
	}
	p.cursor = len(p.path) - 1
	return p.cursor
}
