package controller

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/cubespin/client/input"
)

const (
	// Gain converts a unit directional factor into a target speed in radians per second.
	Gain = 9.0
	// Smoothing is the fraction of the gap between current and target speed
	// closed each frame. It is applied per frame, not per second.
	Smoothing = 0.2
)

var (
	ErrNoWindow      = errors.New("no window to map touches against")
	ErrNegativeDelta = errors.New("elapsed time must not be negative")
)

// Rotation turns keyboard and touch input into a smoothed angular speed.
type Rotation struct {
	speed float64
}

func NewRotation() *Rotation {
	return &Rotation{}
}

// Speed returns the current smoothed speed in radians per second.
func (r *Rotation) Speed() float64 {
	return r.speed
}

// Factor returns the raw directional factor for a frame: +1 for the left key,
// -1 for the right key, and +1 or -1 for each touch on the left or right half
// of a window width pixels wide. The midpoint counts as the right half.
func Factor(in input.Snapshot, width int) (float64, error) {
	if width <= 0 {
		return 0, fmt.Errorf("%w: width %d", ErrNoWindow, width)
	}

	factor := 0.0
	if in.RotateLeft {
		factor += 1
	}
	if in.RotateRight {
		factor -= 1
	}

	half := float64(width) / 2
	for _, t := range in.Touches {
		if float64(t.X) < half {
			factor += 1
		} else {
			factor -= 1
		}
	}

	return factor, nil
}

// Update advances the smoothed speed by one frame and returns the angle in
// radians to rotate by for a frame that lasted dt seconds.
func (r *Rotation) Update(in input.Snapshot, width int, dt float64) (float64, error) {
	if dt < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}
	factor, err := Factor(in, width)
	if err != nil {
		return 0, err
	}
	r.Step(factor * Gain)
	return r.speed * dt, nil
}

// Step moves the speed toward target by the smoothing factor.
func (r *Rotation) Step(target float64) {
	r.speed += (target - r.speed) * Smoothing
}
