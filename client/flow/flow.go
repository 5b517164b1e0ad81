package flow

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/cubespin/pkg/log"
)

var logger = log.Named("flow")

type GameState int

const (
	GameStateLoading GameState = iota
	GameStateInGame
)

func (s GameState) String() string {
	switch s {
	case GameStateLoading:
		return "Loading"
	case GameStateInGame:
		return "InGame"
	}
	return "Unknown"
}

var ErrInvalidTransition = errors.New("invalid state transition")

// Machine holds the current game state and at most one pending transition.
// Transitions are requested during a frame and applied at the start of the next,
// so every state-gated step within a frame observes the same state.
type Machine struct {
	current GameState
	next    *GameState
	onEnter map[GameState][]func()
}

func NewMachine() *Machine {
	return &Machine{
		current: GameStateLoading,
		onEnter: make(map[GameState][]func()),
	}
}

func (m *Machine) Current() GameState {
	return m.current
}

// Pending reports the requested next state, if any.
func (m *Machine) Pending() (GameState, bool) {
	if m.next == nil {
		return m.current, false
	}
	return *m.next, true
}

// OnEnter registers a hook that runs once each time the state is entered.
func (m *Machine) OnEnter(state GameState, hook func()) {
	m.onEnter[state] = append(m.onEnter[state], hook)
}

// RequestTransition schedules a transition to next. Only Loading -> InGame is
// allowed. Requesting the current state is a no-op.
func (m *Machine) RequestTransition(next GameState) error {
	if next == m.current {
		return nil
	}
	if !canTransition(m.current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, next)
	}
	m.next = &next
	return nil
}

// Apply performs the pending transition, running its on-enter hooks, and
// reports whether the state changed.
func (m *Machine) Apply() bool {
	if m.next == nil {
		return false
	}
	prev, next := m.current, *m.next
	m.next = nil
	m.current = next
	logger.Info("Game state changed: %s -> %s", prev, next)
	for _, hook := range m.onEnter[next] {
		hook()
	}
	return true
}

func canTransition(from, to GameState) bool {
	return from == GameStateLoading && to == GameStateInGame
}
