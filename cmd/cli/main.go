// Command sweptpath reads a SimulationInput JSON from a file argument (or stdin),
// runs the simulation, and writes the SimulationLog JSON to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cxd309/sweptpath-engine/internal/config"
	"github.com/cxd309/sweptpath-engine/internal/service"
	"github.com/cxd309/sweptpath-engine/internal/vehicle"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	preset := flag.String("preset", "", "Vehicle preset used when the input names none")
	step := flag.Float64("step", 0, "Step size in metres (overrides config)")
	layers := flag.Bool("layers", false, "Include envelope and wheel-path layers in the output")
	snapshots := flag.Int("snapshots", 0, "Emit every n-th state as a body snapshot (overrides config)")
	listPresets := flag.Bool("presets", false, "List vehicle presets and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *listPresets {
		for _, id := range vehicle.PresetIDs() {
			fmt.Println(id)
		}
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = *loaded
	}
	if *preset != "" {
		cfg.Preset = *preset
	}
	if *step != 0 {
		cfg.StepSize = *step
	}
	if *snapshots != 0 {
		cfg.SnapshotEvery = *snapshots
	}
	cfg.Layers = cfg.Layers || *layers
	if err := config.Validate(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logLevel, _ := config.ParseLevel(cfg.LogLevel)
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	var (
		data []byte
		err  error
	)
	if flag.NArg() > 0 {
		data, err = os.ReadFile(flag.Arg(0))
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		slog.Error("reading input", "error", err)
		os.Exit(1)
	}

	result, err := service.RunJSON(string(data), service.Options{
		StepSize:      cfg.StepSize,
		Preset:        cfg.Preset,
		IncludeLayers: cfg.Layers,
		SnapshotEvery: cfg.SnapshotEvery,
		Workers:       cfg.Workers,
		Logger:        logger,
	})
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(result)
}
