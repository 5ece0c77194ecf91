package geometry

import (
	"fmt"
	"math"
)

// DefaultStep is the default resampling and integration distance in metres.
const DefaultStep = 0.1

// stepTolerance absorbs floating point noise when a segment length is an
// exact multiple of the step, so already-uniform paths are not subdivided.
const stepTolerance = 1e-9

// MaxSamples caps the number of points Resample may produce.
const MaxSamples = 10_000_000

// ValidateStep returns ErrInvalidStep unless step is positive and finite.
func ValidateStep(step float64) error {
	if !(step > 0) || math.IsInf(step, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	return nil
}

// Resample subdivides every segment of path into ceil(length/step) equal
// pieces. Original vertices are kept exactly and corners are not smoothed;
// zero-length segments add no points. Paths with fewer than two points are
// returned as a copy. A step that would produce more than MaxSamples points
// is rejected with ErrInvalidStep.
func Resample(path Path, step float64) (Path, error) {
	if err := ValidateStep(step); err != nil {
		return nil, err
	}
	if err := path.Validate(); err != nil {
		return nil, err
	}
	if len(path) < 2 {
		return append(Path(nil), path...), nil
	}

	var total float64
	for i := 0; i < len(path)-1; i++ {
		total += math.Ceil(Distance(path[i], path[i+1]) / step)
	}
	if total+1 > MaxSamples {
		return nil, fmt.Errorf("%w: %v m yields more than %d samples", ErrInvalidStep, step, MaxSamples)
	}

	out := make(Path, 0, int(total)+1)
	out = append(out, path[0])
	for i := 0; i < len(path)-1; i++ {
		p1, p2 := path[i], path[i+1]
		dist := Distance(p1, p2)
		if dist == 0 {
			continue
		}
		n := int(math.Ceil(dist/step - stepTolerance))
		if n < 1 {
			n = 1
		}
		d := p2.Sub(p1)
		for j := 1; j < n; j++ {
			t := float64(j) / float64(n)
			out = append(out, p1.Add(d.Scale(t)))
		}
		out = append(out, p2)
	}
	return out, nil
}
