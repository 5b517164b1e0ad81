package game

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/cubespin/client/clock"
	"github.com/cbodonnell/cubespin/client/controller"
	"github.com/cbodonnell/cubespin/client/flow"
	"github.com/cbodonnell/cubespin/client/fonts"
	"github.com/cbodonnell/cubespin/client/input"
	"github.com/cbodonnell/cubespin/client/presentation"
	"github.com/cbodonnell/cubespin/client/scenes"
	"github.com/cbodonnell/cubespin/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var logger = log.Named("game")

// InputSource provides the input state for a frame.
type InputSource interface {
	Poll() input.Snapshot
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// timeSpeed is the clock speed applied on entering InGame.
	timeSpeed float64
	// input provides the per-frame input snapshot.
	input InputSource
	// scene is the cube scene.
	scene *scenes.CubeScene
	// machine holds the Loading/InGame state.
	machine *flow.Machine
	// gate moves the game out of Loading.
	gate *flow.Gate
	// rotation is the rotation controller.
	rotation *controller.Rotation
	// clock is the virtual clock.
	clock *clock.Virtual
	// realDelta returns the real duration of a tick in seconds.
	realDelta func() float64
	// width and height are the last laid out screen dimensions.
	width, height int
}

type NewGameOptions struct {
	Debug bool
	// TimeSpeed is the clock speed applied on entering InGame.
	TimeSpeed float64
	// Input defaults to an ebiten poller without touch.
	Input InputSource
	// Notifier is told to hide the page loader, alongside the in-canvas overlay.
	Notifier presentation.Notifier
}

func NewGame(opts NewGameOptions) (*Game, error) {
	in := opts.Input
	if in == nil {
		in = input.NewPoller(input.NewPollerOptions{})
	}

	g := &Game{
		debug:     opts.Debug,
		timeSpeed: opts.TimeSpeed,
		input:     in,
		machine:   flow.NewMachine(),
		rotation:  controller.NewRotation(),
		clock:     clock.NewVirtual(),
		realDelta: func() float64 {
			return 1.0 / float64(ebiten.TPS())
		},
	}

	if err := g.setScene(scenes.NewCubeScene()); err != nil {
		return nil, fmt.Errorf("failed to load cube scene: %v", err)
	}

	g.gate = flow.NewGate(g.machine, presentation.Multi{g.scene.Overlay, opts.Notifier})
	g.machine.OnEnter(flow.GameStateInGame, g.onEnterInGame)

	return g, nil
}

func (g *Game) setScene(scene *scenes.CubeScene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) onEnterInGame() {
	if err := g.clock.SetSpeed(g.timeSpeed); err != nil {
		logger.Warn("Keeping clock speed %v: %v", g.clock.Speed(), err)
		return
	}
	logger.Debug("Clock speed set to %v", g.timeSpeed)
}

// State returns the current game state.
func (g *Game) State() flow.GameState {
	return g.machine.Current()
}

// RotationSpeed returns the smoothed cube rotation speed in radians per second.
func (g *Game) RotationSpeed() float64 {
	return g.rotation.Speed()
}

// Scene returns the cube scene.
func (g *Game) Scene() *scenes.CubeScene {
	return g.scene
}

func (g *Game) Update() error {
	in := g.input.Poll()
	if in.Quit {
		logger.Info("Quit requested")
		return ebiten.Termination
	}

	// Transitions requested last frame take effect before any state gated
	// logic, and before the clock ticks so on-enter speed changes apply now.
	g.machine.Apply()

	delta := g.clock.Tick(g.realDelta())

	switch g.machine.Current() {
	case flow.GameStateLoading:
		if err := g.gate.Check(g.scene.HasCube()); err != nil {
			return fmt.Errorf("failed to check loading gate: %w", err)
		}
	case flow.GameStateInGame:
		angle, err := g.rotation.Update(in, g.width, delta)
		if err != nil {
			return fmt.Errorf("failed to update rotation: %w", err)
		}
		g.scene.RotateCube(angle)
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %w", err)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))

	t := fmt.Sprintf("State: %s  Speed: %0.2f  Clock: x%0.2f", g.machine.Current(), g.rotation.Speed(), g.clock.Speed())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(12, float64(fonts.BottomLineY(fonts.DebugFace, screen.Bounds().Dy(), 8)))
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, fonts.DebugFace, op)
}

// Layout fits the screen to the window or canvas it is given.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
