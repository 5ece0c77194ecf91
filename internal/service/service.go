// Package service is the JSON contract shared by the CLI and WebAssembly
// front ends. It resolves the vehicle, runs one simulation per path and
// assembles the SimulationLog.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cxd309/sweptpath-engine/internal/engine"
	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/kinematics"
	"github.com/cxd309/sweptpath-engine/internal/sweep"
	"github.com/cxd309/sweptpath-engine/internal/vehicle"
)

// ErrNoVehicle is returned when a request names neither a vehicle nor a preset.
var ErrNoVehicle = errors.New("service: no vehicle or vehicle_preset given")

// SimulationMeta holds the identity and stepping parameters of a request.
type SimulationMeta struct {
	SimulationID string  `json:"simulation_id"`
	StepSize     float64 `json:"step_size,omitempty"` // metres
}

// SimulationInput is the JSON-serialisable input to the engine. Vehicle
// takes precedence over VehiclePreset.
type SimulationInput struct {
	Meta          SimulationMeta  `json:"simulation_meta"`
	Vehicle       *vehicle.Config `json:"vehicle,omitempty"`
	VehiclePreset string          `json:"vehicle_preset,omitempty"`
	Paths         []geometry.Path `json:"paths"`
	IncludeLayers bool            `json:"include_layers,omitempty"`
	SnapshotEvery int             `json:"snapshot_every,omitempty"` // 0 = no snapshots
}

// RunLog is the outcome of simulating one path.
type RunLog struct {
	PathIndex   int               `json:"path_index"`
	Reason      engine.Reason     `json:"reason"`
	Iterations  int               `json:"iterations"`
	Ceiling     int               `json:"ceiling"`
	OffTracking float64           `json:"off_tracking,omitempty"` // metres
	States      engine.Trajectory `json:"states"`
	Layers      []sweep.Layer     `json:"layers,omitempty"`
	Snapshots   engine.Trajectory `json:"snapshots,omitempty"` // states to draw bodies at
}

// VehicleGeometry is the resolved drawing data for the vehicle.
type VehicleGeometry struct {
	TractorAxles     int     `json:"tractor_axles"`
	TrailerAxles     int     `json:"trailer_axles,omitempty"`
	MinTurningRadius float64 `json:"min_turning_radius"` // rear axle, metres
}

// SimulationLog is the complete output of a request.
type SimulationLog struct {
	Meta     SimulationMeta  `json:"simulation_meta"`
	Vehicle  vehicle.Config  `json:"vehicle"`
	Geometry VehicleGeometry `json:"vehicle_geometry"`
	Runs     []RunLog        `json:"runs"`
}

// Options are the caller-side defaults applied to every request.
type Options struct {
	StepSize      float64 // used when the request carries none
	Preset        string  // used when the request names no vehicle
	IncludeLayers bool
	SnapshotEvery int // used when the request carries none
	Workers       int
	Logger        *slog.Logger
}

// Run resolves the vehicle and simulates every path of input.
func Run(input SimulationInput, opts Options) (SimulationLog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cfg, err := resolveVehicle(input, opts)
	if err != nil {
		return SimulationLog{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SimulationLog{}, fmt.Errorf("vehicle %q: %w", cfg.Name, err)
	}

	meta := input.Meta
	if meta.SimulationID == "" {
		meta.SimulationID = uuid.NewString()
	}
	if meta.StepSize == 0 {
		meta.StepSize = opts.StepSize
	}
	if meta.StepSize == 0 {
		meta.StepSize = geometry.DefaultStep
	}
	logger = logger.With("simulation_id", meta.SimulationID)
	logger.Info("running simulation", "paths", len(input.Paths), "vehicle", cfg.Name, "step_size", meta.StepSize)

	jobs := make([]engine.Job, len(input.Paths))
	for i, p := range input.Paths {
		jobs[i] = engine.Job{
			Path:    p,
			Vehicle: cfg,
			Options: engine.Options{StepSize: meta.StepSize, Logger: logger.With("path_index", i)},
		}
	}

	layers := input.IncludeLayers || opts.IncludeLayers
	every := input.SnapshotEvery
	if every == 0 {
		every = opts.SnapshotEvery
	}
	results := engine.SimulateAll(jobs, opts.Workers)
	out := SimulationLog{
		Meta:     meta,
		Vehicle:  cfg,
		Geometry: resolveGeometry(cfg),
		Runs:     make([]RunLog, len(results)),
	}
	for i, r := range results {
		if r.Err != nil {
			return SimulationLog{}, fmt.Errorf("path %d: %w", i, r.Err)
		}
		run := RunLog{
			PathIndex:   i,
			Reason:      r.Result.Reason,
			Iterations:  r.Result.Iterations,
			Ceiling:     r.Result.Ceiling,
			OffTracking: sweep.OffTracking(r.Result.States),
			States:      r.Result.States,
		}
		if layers {
			run.Layers = sweep.Layers(r.Result.States)
		}
		if every > 0 {
			run.Snapshots = sweep.Snapshots(r.Result.States, every)
		}
		out.Runs[i] = run
	}
	return out, nil
}

func resolveGeometry(cfg vehicle.Config) VehicleGeometry {
	g := VehicleGeometry{
		TractorAxles:     cfg.AxleCount(),
		MinTurningRadius: kinematics.NewBicycle(cfg.Wheelbase).TurningRadius(cfg.MaxSteeringAngle),
	}
	if cfg.TrailerEnabled() {
		g.TrailerAxles = cfg.Trailer.AxleCount()
	}
	return g
}

func resolveVehicle(input SimulationInput, opts Options) (vehicle.Config, error) {
	if input.Vehicle != nil {
		return *input.Vehicle, nil
	}
	id := input.VehiclePreset
	if id == "" {
		id = opts.Preset
	}
	if id == "" {
		return vehicle.Config{}, ErrNoVehicle
	}
	cfg, err := vehicle.Preset(id)
	if err != nil {
		return vehicle.Config{}, err
	}
	if cfg.Name == "" {
		cfg.Name = id
	}
	return cfg, nil
}

// RunJSON is the primary entry point for the CLI and WASM targets.
// It accepts a JSON-encoded SimulationInput, runs the simulation, and returns a
// JSON-encoded SimulationLog.
func RunJSON(jsonInput string, opts Options) (string, error) {
	var input SimulationInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	simLog, err := Run(input, opts)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(simLog)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}

// PresetsJSON returns the built-in vehicle presets keyed by id.
func PresetsJSON() (string, error) {
	presets := make(map[string]vehicle.Config)
	for _, id := range vehicle.PresetIDs() {
		cfg, err := vehicle.Preset(id)
		if err != nil {
			return "", err
		}
		presets[id] = cfg
	}
	out, err := json.Marshal(presets)
	if err != nil {
		return "", fmt.Errorf("marshaling presets: %w", err)
	}
	return string(out), nil
}
