package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// KeyRotateLeft spins the cube counter-clockwise seen from above.
	KeyRotateLeft = ebiten.KeyA
	// KeyRotateRight spins the cube clockwise seen from above.
	KeyRotateRight = ebiten.KeyD
)

// Touch is an active touch point in screen pixels.
type Touch struct {
	ID ebiten.TouchID
	X  int
	Y  int
}

// Snapshot is the input state for a single frame.
type Snapshot struct {
	RotateLeft  bool
	RotateRight bool
	Touches     []Touch
	// Quit is set on the frame the quit key goes down.
	Quit bool
}

// Poller reads the per-frame input state from ebiten.
type Poller struct {
	// touchEnabled is a boolean value indicating whether touches are read.
	touchEnabled bool
	// quitEnabled is a boolean value indicating whether the quit key is read.
	quitEnabled bool
	// touchIDs is reused between frames.
	touchIDs []ebiten.TouchID
}

type NewPollerOptions struct {
	// Touch enables reading touch points.
	Touch bool
	// Quit enables the quit key. Browsers have no use for it.
	Quit bool
}

func NewPoller(opts NewPollerOptions) *Poller {
	return &Poller{
		touchEnabled: opts.Touch,
		quitEnabled:  opts.Quit,
	}
}

func (p *Poller) Poll() Snapshot {
	s := Snapshot{
		RotateLeft:  ebiten.IsKeyPressed(KeyRotateLeft),
		RotateRight: ebiten.IsKeyPressed(KeyRotateRight),
		Quit:        p.quitEnabled && IsQuitJustPressed(),
	}
	if !p.touchEnabled {
		return s
	}
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, Touch{ID: id, X: x, Y: y})
	}
	return s
}

// IsQuitJustPressed returns a boolean value indicating whether the quit key was just pressed.
func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
