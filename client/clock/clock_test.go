package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtual_Tick(t *testing.T) {
	tests := []struct {
		name        string
		speed       float64
		ticks       []float64
		wantDelta   float64
		wantElapsed float64
	}{
		{name: "real time", speed: 1, ticks: []float64{0.5, 0.25}, wantDelta: 0.25, wantElapsed: 0.75},
		{name: "double speed", speed: 2, ticks: []float64{0.5, 0.25}, wantDelta: 0.5, wantElapsed: 1.5},
		{name: "paused", speed: 0, ticks: []float64{1, 1}, wantDelta: 0, wantElapsed: 0},
		{name: "negative real delta clamps", speed: 1, ticks: []float64{-1}, wantDelta: 0, wantElapsed: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVirtual()
			require.NoError(t, v.SetSpeed(tt.speed))
			for _, d := range tt.ticks {
				v.Tick(d)
			}
			assert.InDelta(t, tt.wantDelta, v.Delta(), 1e-12)
			assert.InDelta(t, tt.wantElapsed, v.Elapsed(), 1e-12)
		})
	}
}

func TestVirtual_SetSpeed(t *testing.T) {
	v := NewVirtual()
	assert.Equal(t, 1.0, v.Speed())
	assert.ErrorIs(t, v.SetSpeed(-0.5), ErrNegativeSpeed)
	assert.Equal(t, 1.0, v.Speed())
}
