package flow

import (
	"testing"

	"github.com/cbodonnell/cubespin/client/presentation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runFrames drives the gate the way the game does: apply pending transitions,
// then check only while Loading.
func runFrames(t *testing.T, m *Machine, g *Gate, cubeAt int, frames int) (transitions int) {
	t.Helper()
	for frame := 0; frame < frames; frame++ {
		if m.Apply() {
			transitions++
		}
		if m.Current() == GameStateLoading {
			require.NoError(t, g.Check(frame >= cubeAt))
		}
	}
	return transitions
}

func TestGate_staysLoadingWithoutCube(t *testing.T) {
	m := NewMachine()
	hidden := 0
	g := NewGate(m, presentation.Func(func() { hidden++ }))

	transitions := runFrames(t, m, g, 1000, 100)

	assert.Equal(t, 0, transitions)
	assert.Equal(t, 0, hidden)
	assert.Equal(t, GameStateLoading, m.Current())
}

func TestGate_transitionsExactlyOnce(t *testing.T) {
	tests := []struct {
		name   string
		cubeAt int
	}{
		{name: "cube present at start", cubeAt: 0},
		{name: "cube appears later", cubeAt: 17},
		{name: "cube appears on last loading frame", cubeAt: 98},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			hidden := 0
			g := NewGate(m, presentation.Func(func() { hidden++ }))

			transitions := runFrames(t, m, g, tt.cubeAt, 100)

			assert.Equal(t, 1, transitions)
			assert.Equal(t, 1, hidden)
			assert.Equal(t, GameStateInGame, m.Current())
		})
	}
}

func TestGate_nilNotifier(t *testing.T) {
	m := NewMachine()
	g := NewGate(m, nil)
	require.NoError(t, g.Check(true))
	assert.True(t, m.Apply())
}

func TestGate_afterInGameIsNoop(t *testing.T) {
	m := NewMachine()
	g := NewGate(m, nil)
	require.NoError(t, g.Check(true))
	m.Apply()

	require.NoError(t, g.Check(true))
	_, pending := m.Pending()
	assert.False(t, pending)
}

func TestGate_invalidTransitionIsWrapped(t *testing.T) {
	m := NewMachine()
	m.current = GameState(7)
	g := NewGate(m, nil)

	err := g.Check(true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "failed to request transition")
}
