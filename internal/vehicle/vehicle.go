// Package vehicle defines the tractor and trailer geometry consumed by the
// simulation kernel, along with validation and a catalogue of presets.
package vehicle

import (
	"encoding/json"
	"fmt"
)

// TrailerKind selects the body geometry of a trailer. It never changes the
// trailer kinematics.
type TrailerKind string

const (
	TrailerStandard TrailerKind = "standard"
	TrailerPole     TrailerKind = "pole"
)

const (
	defaultTractorAxles = 1
	defaultTrailerAxles = 2
)

// Config holds the static parameters of a vehicle. Lengths are metres,
// angles radians.
type Config struct {
	Name             string         `json:"name,omitempty" yaml:"name"`
	Wheelbase        float64        `json:"wheelbase" yaml:"wheelbase"`
	Width            float64        `json:"width" yaml:"width"`
	FrontOverhang    float64        `json:"front_overhang" yaml:"front_overhang"`         // beyond the front axle
	RearOverhang     float64        `json:"rear_overhang" yaml:"rear_overhang"`           // beyond the rear axle
	MaxSteeringAngle float64        `json:"max_steering_angle" yaml:"max_steering_angle"` // radians, symmetric
	TractorAxles     int            `json:"tractor_axles,omitempty" yaml:"tractor_axles"` // rendering only
	HasTrailer       bool           `json:"has_trailer" yaml:"has_trailer"`
	Trailer          *TrailerConfig `json:"trailer,omitempty" yaml:"trailer,omitempty"`
}

// TrailerConfig describes a trailer hitched behind the tractor rear axle.
type TrailerConfig struct {
	Kind          TrailerKind `json:"kind" yaml:"kind"`
	Wheelbase     float64     `json:"wheelbase" yaml:"wheelbase"` // hitch to trailer axle
	Width         float64     `json:"width" yaml:"width"`
	FrontOverhang float64     `json:"front_overhang" yaml:"front_overhang"`
	RearOverhang  float64     `json:"rear_overhang" yaml:"rear_overhang"`
	// HitchOffset is the signed distance from the tractor rear axle to the
	// hitch point; positive is behind the axle.
	HitchOffset float64 `json:"hitch_offset" yaml:"hitch_offset"`
	Axles       int     `json:"axles,omitempty" yaml:"axles"` // rendering only
}

// AxleCount returns the number of tractor axles to draw.
func (c Config) AxleCount() int {
	if c.TractorAxles == 0 {
		return defaultTractorAxles
	}
	return c.TractorAxles
}

// TrailerEnabled reports whether the configuration carries a usable trailer.
func (c Config) TrailerEnabled() bool { return c.HasTrailer && c.Trailer != nil }

// IsPoleTrailer reports whether the trailer is drawn as a pole and rear bogie.
func (t TrailerConfig) IsPoleTrailer() bool { return t.Kind == TrailerPole }

// AxleCount returns the number of trailer axles to draw.
func (t TrailerConfig) AxleCount() int {
	if t.Axles == 0 {
		return defaultTrailerAxles
	}
	return t.Axles
}

// trailerJSON is the raw JSON shape of a TrailerConfig, before the kind
// discriminator is resolved.
type trailerJSON struct {
	Kind          string  `json:"kind"`
	Wheelbase     float64 `json:"wheelbase"`
	Width         float64 `json:"width"`
	FrontOverhang float64 `json:"front_overhang"`
	RearOverhang  float64 `json:"rear_overhang"`
	HitchOffset   float64 `json:"hitch_offset"`
	Axles         int     `json:"axles"`
	IsPoleTrailer bool    `json:"is_pole_trailer"`
}

// UnmarshalJSON implements json.Unmarshaler for TrailerConfig.
// The "kind" discriminator selects the body variant; when it is absent the
// legacy "is_pole_trailer" flag is honoured and "standard" is assumed
// otherwise.
//
// Supported kinds:
//   - "standard": box body from the hitch to the rear overhang.
//   - "pole": rigid pole from the hitch to a rear bogie.
func (t *TrailerConfig) UnmarshalJSON(data []byte) error {
	var aux trailerJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	kind, err := ParseTrailerKind(aux.Kind, aux.IsPoleTrailer)
	if err != nil {
		return err
	}

	*t = TrailerConfig{
		Kind:          kind,
		Wheelbase:     aux.Wheelbase,
		Width:         aux.Width,
		FrontOverhang: aux.FrontOverhang,
		RearOverhang:  aux.RearOverhang,
		HitchOffset:   aux.HitchOffset,
		Axles:         aux.Axles,
	}
	return nil
}

// ParseTrailerKind resolves a kind string. An empty string falls back to the
// pole flag.
func ParseTrailerKind(s string, pole bool) (TrailerKind, error) {
	switch TrailerKind(s) {
	case TrailerStandard, TrailerPole:
		return TrailerKind(s), nil
	case "":
		if pole {
			return TrailerPole, nil
		}
		return TrailerStandard, nil
	default:
		return "", fmt.Errorf("%w: unknown trailer kind %q", ErrInvalidConfig, s)
	}
}
