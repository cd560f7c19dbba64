package session

import "math"

const (
	MinDensity     Density = 0.2
	MaxDensity     Density = 2.5
	DensityStep    Density = 0.1
	DefaultDensity Density = 1.0
)

// Density scales how many nodes and links the background draws.
type Density float64

// ClampDensity pins v to [MinDensity, MaxDensity] and rounds it to the
// nearest DensityStep. ok is false for NaN, which has no sensible slot.
func ClampDensity(v float64) (d Density, ok bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	if v < float64(MinDensity) {
		v = float64(MinDensity)
	}
	if v > float64(MaxDensity) {
		v = float64(MaxDensity)
	}
	// divide by ten rather than multiply by the step so 3 steps is exactly 0.3
	return Density(math.Round(v/float64(DensityStep)) / 10), true
}

// Fraction positions d on the slider, 0 at MinDensity and 1 at MaxDensity.
func (d Density) Fraction() float64 {
	return (float64(d) - float64(MinDensity)) / float64(MaxDensity-MinDensity)
}
