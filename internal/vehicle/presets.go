package vehicle

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned when a preset id is not in the catalogue.
var ErrUnknownPreset = errors.New("vehicle: unknown preset")

//go:embed presets.yaml
var presetsYAML []byte

// presetEntry is one catalogue record. The file gives the steering limit in
// degrees; it is converted to radians on load.
type presetEntry struct {
	ID             string  `yaml:"id"`
	MaxSteeringDeg float64 `yaml:"max_steering_deg"`
	Config         `yaml:",inline"`
}

var loadPresets = sync.OnceValues(func() (map[string]Config, error) {
	return ParsePresets(presetsYAML)
})

// ParsePresets decodes a YAML preset catalogue and validates every entry.
func ParsePresets(data []byte) (map[string]Config, error) {
	var entries []presetEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}

	out := make(map[string]Config, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("preset %q: missing id", e.Name)
		}
		if _, dup := out[e.ID]; dup {
			return nil, fmt.Errorf("preset %q defined twice", e.ID)
		}
		cfg := e.Config
		cfg.MaxSteeringAngle = e.MaxSteeringDeg * math.Pi / 180
		if cfg.Trailer != nil && cfg.Trailer.Kind == "" {
			cfg.Trailer.Kind = TrailerStandard
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", e.ID, err)
		}
		out[e.ID] = cfg
	}
	return out, nil
}

// Preset returns a copy of the built-in preset with the given id.
func Preset(id string) (Config, error) {
	presets, err := loadPresets()
	if err != nil {
		return Config{}, err
	}
	cfg, ok := presets[id]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	if cfg.Trailer != nil {
		t := *cfg.Trailer
		cfg.Trailer = &t
	}
	return cfg, nil
}

// PresetIDs returns the built-in preset ids in sorted order.
func PresetIDs() []string {
	presets, err := loadPresets()
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
