package vehicle

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("vehicle: invalid config")

// Validate checks every field and returns all violations combined, each
// wrapping ErrInvalidConfig. A nil return means the config is safe to simulate.
func (c Config) Validate() error {
	var err error
	err = multierr.Append(err, positive("wheelbase", c.Wheelbase))
	err = multierr.Append(err, positive("width", c.Width))
	err = multierr.Append(err, nonNegative("front_overhang", c.FrontOverhang))
	err = multierr.Append(err, nonNegative("rear_overhang", c.RearOverhang))
	if !(c.MaxSteeringAngle > 0 && c.MaxSteeringAngle < math.Pi/2) {
		err = multierr.Append(err, fmt.Errorf("%w: max_steering_angle must be in (0, π/2) radians, got %v",
			ErrInvalidConfig, c.MaxSteeringAngle))
	}
	if c.TractorAxles < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: tractor_axles must not be negative, got %d", ErrInvalidConfig, c.TractorAxles))
	}

	if c.HasTrailer {
		if c.Trailer == nil {
			return multierr.Append(err, fmt.Errorf("%w: has_trailer is set but trailer is missing", ErrInvalidConfig))
		}
		err = multierr.Append(err, c.Trailer.Validate())
	}
	return err
}

// Validate checks the trailer sub-config on its own.
func (t TrailerConfig) Validate() error {
	var err error
	if t.Kind != TrailerStandard && t.Kind != TrailerPole {
		err = multierr.Append(err, fmt.Errorf("%w: unknown trailer kind %q", ErrInvalidConfig, t.Kind))
	}
	err = multierr.Append(err, positive("trailer.wheelbase", t.Wheelbase))
	err = multierr.Append(err, positive("trailer.width", t.Width))
	err = multierr.Append(err, nonNegative("trailer.front_overhang", t.FrontOverhang))
	err = multierr.Append(err, nonNegative("trailer.rear_overhang", t.RearOverhang))
	if math.IsNaN(t.HitchOffset) || math.IsInf(t.HitchOffset, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: trailer.hitch_offset must be finite, got %v", ErrInvalidConfig, t.HitchOffset))
	}
	if t.Axles < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: trailer.axles must not be negative, got %d", ErrInvalidConfig, t.Axles))
	}
	return err
}

func positive(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, field, v)
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, field, v)
	}
	return nil
}
