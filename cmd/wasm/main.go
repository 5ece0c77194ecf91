//go:build js && wasm

// Command wasm exposes the swept-path engine to the browser via WebAssembly.
// After loading, it registers two global JavaScript functions:
//
//	runSimulation(jsonString) -> jsonString
//	vehiclePresets() -> jsonString
//
// The input and output of runSimulation are JSON-encoded SimulationInput and
// SimulationLog respectively, matching the contract used by the CLI.
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/cxd309/sweptpath-engine/internal/service"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	js.Global().Set("runSimulation", js.FuncOf(runSimulation))
	js.Global().Set("vehiclePresets", js.FuncOf(vehiclePresets))
	select {} // keep the WASM module alive until the page is closed
}

func runSimulation(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	// Paths run one after another on the page's single thread.
	result, err := service.RunJSON(args[0].String(), service.Options{Workers: 1, Logger: logger})
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}

func vehiclePresets(_ js.Value, _ []js.Value) any {
	result, err := service.PresetsJSON()
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}
