package engine

import (
	"io"
	"log/slog"

	"github.com/cxd309/sweptpath-engine/internal/envelope"
	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/kinematics"
	"github.com/cxd309/sweptpath-engine/internal/steering"
)

// RunState describes where a simulation run is in its lifecycle.
type RunState string

const (
	StateRunning    RunState = "running"
	StateTerminated RunState = "terminated"
)

// Reason records why a run terminated.
type Reason string

const (
	// ReasonReachedEnd means the front axle arrived at the end of the path.
	ReasonReachedEnd Reason = "reached_end"
	// ReasonSafetyCutoff means the iteration ceiling was hit before the end
	// was reached; the trajectory is partial.
	ReasonSafetyCutoff Reason = "safety_cutoff"
	// ReasonEmptyPath means the path had fewer than two points.
	ReasonEmptyPath Reason = "empty_path"
)

const (
	// arrivalDistance is how close the front axle must get to the final sample.
	arrivalDistance = 0.5 // metres
	// arrivalWindow is how many samples from the end the lookahead cursor must be.
	arrivalWindow = 5
)

// TrailerState is the trailer axle pose at one instant.
type TrailerState struct {
	Position geometry.Point2D `json:"position"`
	Heading  float64          `json:"heading"` // radians
}

// Envelope holds the projected body corners at one instant. Trailer is nil
// when the vehicle has no trailer.
type Envelope struct {
	Tractor envelope.Corners  `json:"tractor"`
	Trailer *envelope.Corners `json:"trailer,omitempty"`
}

// VehicleState is one simulation instant.
type VehicleState struct {
	Position      geometry.Point2D `json:"position"`       // tractor rear axle
	Heading       float64          `json:"heading"`        // radians
	SteeringAngle float64          `json:"steering_angle"` // radians
	Trailer       *TrailerState    `json:"trailer,omitempty"`
	Envelope      Envelope         `json:"envelope"`
}

// Trajectory is the emission-ordered sequence of states of one run.
type Trajectory []VehicleState

// Result is the complete output of one run.
type Result struct {
	States     Trajectory `json:"states"`
	Reason     Reason     `json:"reason"`
	Iterations int        `json:"iterations"`
	Ceiling    int        `json:"ceiling"` // iteration limit that applied
}

// Converged reports whether the run ended normally.
func (r Result) Converged() bool { return r.Reason != ReasonSafetyCutoff }

// Options tune a run. The zero value is usable.
type Options struct {
	// StepSize is both the resampling spacing and the distance moved per
	// iteration, in metres. Zero selects geometry.DefaultStep.
	StepSize float64
	// Logger receives run summaries. Nil discards them.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.StepSize == 0 {
		o.StepSize = geometry.DefaultStep
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// run is the mutable state of a single simulation.
type run struct {
	step    float64
	samples geometry.Path
	ceiling int

	tractor    kinematics.MotionModel
	drawbar    *kinematics.Drawbar
	pursuit    *steering.PurePursuit
	tractorExt envelope.Extents
	trailerExt envelope.Extents

	pose       kinematics.Pose
	trailer    kinematics.Pose
	state      RunState
	reason     Reason
	iterations int
	states     Trajectory

	log *slog.Logger
}
