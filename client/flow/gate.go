package flow

import (
	"fmt"

	"github.com/cbodonnell/cubespin/client/presentation"
)

// Gate moves the game out of Loading once the scene holds its cube.
type Gate struct {
	machine  *Machine
	notifier presentation.Notifier
}

func NewGate(machine *Machine, notifier presentation.Notifier) *Gate {
	if notifier == nil {
		notifier = presentation.Noop{}
	}
	return &Gate{
		machine:  machine,
		notifier: notifier,
	}
}

// Check is run once per Loading frame. When the cube exists, it tells the
// presentation layer to hide the loader and requests the InGame transition.
func (g *Gate) Check(cubeExists bool) error {
	if !cubeExists {
		return nil
	}
	logger.Debug("Cube found, hiding loader")
	g.notifier.HideLoader()
	if err := g.machine.RequestTransition(GameStateInGame); err != nil {
		return fmt.Errorf("failed to request transition: %w", err)
	}
	return nil
}
