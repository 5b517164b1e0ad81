package config

import (
	"flag"
)

// Flags are the command line overrides. Only flags that were set explicitly
// are applied, so unset flags never clobber profile or file values.
type Flags struct {
	Profile    *string
	ConfigPath *string
	LogLevel   *string
	Debug      *bool
	VSync      *bool
	TimeSpeed  *float64
	Touch      *bool
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Profile:    fs.String("profile", string(ProfileDesktop), "Config profile (desktop, web)"),
		ConfigPath: fs.String("config", "", "Path to a TOML config file"),
		LogLevel:   fs.String("log-level", "info", "Log level"),
		Debug:      fs.Bool("debug", false, "Show debug overlay"),
		VSync:      fs.Bool("vsync", true, "Enable vsync"),
		TimeSpeed:  fs.Float64("time-speed", 1.0, "Time speed multiplier applied when the game starts"),
		Touch:      fs.Bool("touch", false, "Enable touch input"),
	}
}

// Resolve builds the final config: profile defaults, then the config file,
// then explicitly set flags. An explicit -profile also beats the file's profile.
func (f *Flags) Resolve(fs *flag.FlagSet) (Config, error) {
	cfg, err := Defaults(Profile(*f.Profile))
	if err != nil {
		return Config{}, err
	}

	if *f.ConfigPath != "" {
		load := LoadFile
		if isSet(fs, "profile") {
			load = LoadFileKeepProfile
		}
		cfg, err = load(*f.ConfigPath, cfg)
		if err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "log-level":
			cfg.LogLevel = *f.LogLevel
		case "debug":
			cfg.Debug = *f.Debug
		case "vsync":
			cfg.VSync = *f.VSync
		case "time-speed":
			cfg.TimeSpeed = *f.TimeSpeed
		case "touch":
			cfg.Touch = *f.Touch
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}
