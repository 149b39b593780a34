// Package config provides YAML configuration loading for timber.
//
// Only runtime, presentation, server and logging settings live here. The
// gameplay constants of the simulation are fixed.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timber/internal/core"
)

// Config is the complete timber configuration.
type Config struct {
	Runtime   RuntimeConfig   `yaml:"runtime"`
	Animation AnimationConfig `yaml:"animation"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// RuntimeConfig controls the frame loop.
type RuntimeConfig struct {
	TickRate      int     `yaml:"tick_rate"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // seconds
	Seed          int64   `yaml:"seed"`
}

// AnimationConfig controls presentation timings, in seconds.
type AnimationConfig struct {
	ChopDuration  float64 `yaml:"chop_duration"`
	DeathDuration float64 `yaml:"death_duration"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration. It matches defaults/timber.yaml.
func Default() Config {
	return Config{
		Runtime: RuntimeConfig{
			TickRate:      60,
			MaxFrameDelta: 0.25,
		},
		Animation: AnimationConfig{
			ChopDuration:  0.12,
			DeathDuration: 0.6,
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid setting, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Runtime.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be positive, got %d", c.Runtime.TickRate))
	}
	if c.Runtime.MaxFrameDelta < 0 {
		errs = append(errs, fmt.Errorf("runtime.max_frame_delta must not be negative, got %g", c.Runtime.MaxFrameDelta))
	}
	if c.Animation.ChopDuration < 0 {
		errs = append(errs, fmt.Errorf("animation.chop_duration must not be negative, got %g", c.Animation.ChopDuration))
	}
	if c.Animation.DeathDuration < 0 {
		errs = append(errs, fmt.Errorf("animation.death_duration must not be negative, got %g", c.Animation.DeathDuration))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// RuntimeFor converts the runtime section into the core runtime config.
func (c Config) RuntimeFor(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:       screenW,
		ScreenH:       screenH,
		TickRate:      c.Runtime.TickRate,
		Seed:          c.Runtime.Seed,
		MaxFrameDelta: c.Runtime.MaxFrameDelta,
	}
}
