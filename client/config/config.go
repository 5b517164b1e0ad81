package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/cbodonnell/cubespin/pkg/log"
	"github.com/pelletier/go-toml/v2"
)

var logger = log.Named("config")

type Profile string

const (
	// ProfileDesktop targets a native window driven by keyboard input.
	ProfileDesktop Profile = "desktop"
	// ProfileWeb targets a browser canvas with touch input.
	ProfileWeb Profile = "web"
)

const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "Cubespin"
	DefaultLoaderFunc   = "hideBevyLoader"
)

var (
	ErrUnknownProfile   = errors.New("unknown profile")
	ErrInvalidTimeSpeed = errors.New("time speed must not be negative")
	ErrInvalidWindow    = errors.New("window dimensions must be positive")
)

type Config struct {
	// Profile selects the defaults the rest of the config is layered on.
	Profile Profile `toml:"profile"`
	// LogLevel is one of error, warn, info, debug, trace.
	LogLevel string `toml:"log_level"`
	// Debug enables the FPS/TPS/state overlay.
	Debug bool `toml:"debug"`
	// VSync enables vertical sync.
	VSync bool `toml:"vsync"`
	// TimeSpeed is the virtual clock multiplier applied when the game starts.
	TimeSpeed float64 `toml:"time_speed"`
	// Touch enables touch input for the rotation controller.
	Touch bool `toml:"touch"`
	// LoaderFunc is the global JS function called to hide the page loader.
	LoaderFunc string `toml:"loader_func"`
	// Window holds native window settings.
	Window WindowConfig `toml:"window"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Defaults returns the config for the given profile.
func Defaults(profile Profile) (Config, error) {
	cfg := Config{
		Profile:    profile,
		LogLevel:   log.LogLevelInfo.String(),
		TimeSpeed:  1.0,
		LoaderFunc: DefaultLoaderFunc,
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
	}

	switch profile {
	case ProfileDesktop:
		cfg.VSync = true
		cfg.Touch = false
	case ProfileWeb:
		cfg.VSync = false
		cfg.Touch = true
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}

	return cfg, nil
}

// LoadFile layers the TOML file at path over base. If the file names a
// different profile, the file is layered over that profile's defaults instead.
func LoadFile(path string, base Config) (Config, error) {
	b, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	return Decode(b, base)
}

// LoadFileKeepProfile layers the TOML file at path over base without letting
// the file change the profile. Used when the profile came from the command line.
func LoadFileKeepProfile(path string, base Config) (Config, error) {
	b, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	return DecodeKeepProfile(b, base)
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	return b, nil
}

// Decode layers TOML data over base. Keys missing from data keep their base values.
func Decode(data []byte, base Config) (Config, error) {
	cfg := base
	if err := decodeStrict(data, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Profile != base.Profile {
		rebased, err := Defaults(cfg.Profile)
		if err != nil {
			return Config{}, err
		}
		if err := decodeStrict(data, &rebased); err != nil {
			return Config{}, err
		}
		cfg = rebased
	}

	return cfg, nil
}

// DecodeKeepProfile layers TOML data over base like Decode, but a profile key
// in data is only checked, never applied.
func DecodeKeepProfile(data []byte, base Config) (Config, error) {
	cfg := base
	if err := decodeStrict(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Profile != base.Profile {
		if _, err := Defaults(cfg.Profile); err != nil {
			return Config{}, err
		}
		logger.Debug("Ignoring config file profile %q in favor of %q", cfg.Profile, base.Profile)
	}
	cfg.Profile = base.Profile
	return cfg, nil
}

func decodeStrict(data []byte, cfg *Config) error {
	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config: %v", err)
	}
	return nil
}

// Encode renders the config as TOML.
func (c Config) Encode() ([]byte, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %v", err)
	}
	return b, nil
}

// Validate checks the config for values the game cannot start with.
func (c Config) Validate() error {
	if c.Profile != ProfileDesktop && c.Profile != ProfileWeb {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, c.Profile)
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.TimeSpeed < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSpeed, c.TimeSpeed)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	return nil
}
