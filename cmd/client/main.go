package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/cubespin/client/config"
	"github.com/cbodonnell/cubespin/client/game"
	"github.com/cbodonnell/cubespin/client/input"
	"github.com/cbodonnell/cubespin/client/presentation"
	"github.com/cbodonnell/cubespin/pkg/log"
	"github.com/cbodonnell/cubespin/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		panic(fmt.Sprintf("Failed to resolve config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())
	log.Info("Profile %s: vsync=%t touch=%t time-speed=%v", cfg.Profile, cfg.VSync, cfg.Touch, cfg.TimeSpeed)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:     cfg.Debug,
		TimeSpeed: cfg.TimeSpeed,
		Input: input.NewPoller(input.NewPollerOptions{
			Touch: cfg.Touch,
			Quit:  cfg.Profile == config.ProfileDesktop,
		}),
		Notifier: presentation.Platform(cfg.LoaderFunc),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.VSync)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
	log.Info("Client stopped")
}
