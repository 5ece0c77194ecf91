// Package engine implements the swept-path simulation loop.
//
// The simulation advances in fixed arc-length steps. Each step has four
// passes:
//
//  1. Steering - the pure-pursuit controller picks a lookahead target on the
//     resampled path and computes a clamped steering angle.
//
//  2. Tractor - the bicycle model moves the rear axle one step.
//
//  3. Trailer - the drawbar model drags the trailer axle behind the new
//     hitch point.
//
//  4. Envelope - body corners are projected from the new poses and the state
//     is appended to the trajectory.
//
// A run ends when the front axle reaches the end of the path, or at an
// iteration ceiling proportional to the resampled path length.
package engine

import (
	"fmt"

	"github.com/cxd309/sweptpath-engine/internal/envelope"
	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/kinematics"
	"github.com/cxd309/sweptpath-engine/internal/steering"
	"github.com/cxd309/sweptpath-engine/internal/vehicle"
)

// IterationCeiling returns the maximum number of iterations a run over n
// resampled points may take.
func IterationCeiling(n int) int { return 3*n + 1000 }

// Simulate drives cfg along path and returns the trajectory. The config is
// validated first; a path with fewer than two points then yields an empty
// Result with ReasonEmptyPath and no error. Neither input is mutated.
func Simulate(path geometry.Path, cfg vehicle.Config, opts Options) (Result, error) {
	opts = opts.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("vehicle config: %w", err)
	}
	if err := geometry.ValidateStep(opts.StepSize); err != nil {
		return Result{}, err
	}
	if err := path.Validate(); err != nil {
		return Result{}, err
	}
	if len(path) < 2 {
		return Result{Reason: ReasonEmptyPath}, nil
	}

	samples, err := geometry.Resample(path, opts.StepSize)
	if err != nil {
		return Result{}, fmt.Errorf("resampling path: %w", err)
	}

	r := newRun(path, samples, cfg, opts)
	return r.execute(), nil
}

// newRun places the vehicle so that its front axle sits on the first path
// point, facing along the first segment, with the trailer in line behind it.
func newRun(path, samples geometry.Path, cfg vehicle.Config, opts Options) *run {
	tractor := kinematics.NewBicycle(cfg.Wheelbase)
	heading, _ := path.StartHeading()

	r := &run{
		step:       opts.StepSize,
		samples:    samples,
		ceiling:    IterationCeiling(len(samples)),
		tractor:    tractor,
		pursuit:    steering.New(cfg.Wheelbase, cfg.MaxSteeringAngle, samples),
		tractorExt: envelope.TractorExtents(cfg),
		pose: kinematics.Pose{
			Position: path[0].Offset(heading, -cfg.Wheelbase),
			Heading:  heading,
		},
		state:  StateRunning,
		states: make(Trajectory, 0, len(samples)),
		log:    opts.Logger,
	}

	if cfg.TrailerEnabled() {
		r.drawbar = &kinematics.Drawbar{
			Wheelbase:   cfg.Trailer.Wheelbase,
			HitchOffset: cfg.Trailer.HitchOffset,
		}
		r.trailerExt = envelope.TrailerExtents(*cfg.Trailer)
		r.trailer = r.drawbar.Initial(r.pose)
	}
	return r
}

// execute steps until termination and returns the result.
func (r *run) execute() Result {
	for r.state == StateRunning {
		r.advance()
		switch {
		case r.reachedEnd():
			r.terminate(ReasonReachedEnd)
		case r.iterations >= r.ceiling:
			r.terminate(ReasonSafetyCutoff)
		}
	}

	attrs := []any{
		"reason", r.reason,
		"iterations", r.iterations,
		"samples", len(r.samples),
		"trailer", r.drawbar != nil,
	}
	if r.reason == ReasonSafetyCutoff {
		r.log.Warn("simulation hit iteration ceiling before reaching path end", append(attrs, "ceiling", r.ceiling)...)
	} else {
		r.log.Debug("simulation finished", attrs...)
	}

	return Result{
		States:     r.states,
		Reason:     r.reason,
		Iterations: r.iterations,
		Ceiling:    r.ceiling,
	}
}

// advance runs one steer/move/follow/project iteration and records the state.
func (r *run) advance() {
	cmd := r.pursuit.Steer(r.pose.Position, r.pose.Heading)
	r.pose = r.tractor.Advance(r.pose, cmd.Angle, r.step)
	if r.drawbar != nil {
		r.trailer = r.drawbar.Follow(r.pose, r.trailer)
	}
	r.states = append(r.states, r.snapshot(cmd.Angle))
	r.iterations++
}

// reachedEnd reports whether the front axle is at the final sample and the
// lookahead cursor has caught up with the end of the path. The cursor check
// stops looping paths from ending as soon as they pass near their start.
func (r *run) reachedEnd() bool {
	last := r.samples[len(r.samples)-1]
	front := r.tractor.FrontAxle(r.pose)
	return geometry.Distance(front, last) < arrivalDistance &&
		r.pursuit.Cursor() >= len(r.samples)-arrivalWindow
}

func (r *run) terminate(reason Reason) {
	r.state = StateTerminated
	r.reason = reason
}

// snapshot builds the VehicleState for the current poses.
func (r *run) snapshot(steer float64) VehicleState {
	s := VehicleState{
		Position:      r.pose.Position,
		Heading:       r.pose.Heading,
		SteeringAngle: steer,
		Envelope: Envelope{
			Tractor: envelope.Project(r.pose.Position, r.pose.Heading, r.tractorExt),
		},
	}
	if r.drawbar != nil {
		corners := envelope.Project(r.trailer.Position, r.trailer.Heading, r.trailerExt)
		s.Trailer = &TrailerState{Position: r.trailer.Position, Heading: r.trailer.Heading}
		s.Envelope.Trailer = &corners
	}
	return s
}
