package clock

import (
	"errors"
	"fmt"
)

var ErrNegativeSpeed = errors.New("clock speed must not be negative")

// Virtual scales real frame time by a relative speed.
type Virtual struct {
	speed   float64
	delta   float64
	elapsed float64
}

func NewVirtual() *Virtual {
	return &Virtual{speed: 1}
}

func (v *Virtual) Speed() float64 {
	return v.speed
}

// SetSpeed sets the multiplier applied to real time. Zero pauses the clock.
func (v *Virtual) SetSpeed(speed float64) error {
	if speed < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeSpeed, speed)
	}
	v.speed = speed
	return nil
}

// Tick advances the clock by realDelta seconds and returns the scaled delta.
func (v *Virtual) Tick(realDelta float64) float64 {
	if realDelta < 0 {
		realDelta = 0
	}
	v.delta = realDelta * v.speed
	v.elapsed += v.delta
	return v.delta
}

// Delta returns the scaled duration of the last tick.
func (v *Virtual) Delta() float64 {
	return v.delta
}

// Elapsed returns the total scaled time.
func (v *Virtual) Elapsed() float64 {
	return v.elapsed
}
