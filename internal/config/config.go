// Package config provides the defaults that drive plan resolution.
//
// Defaults come from three layers, later ones winning: built-in values, an
// optional YAML file named by SH2MP4_CONFIG, and SH2MP4_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfigFile = "SH2MP4_CONFIG"
	EnvFPS        = "SH2MP4_FPS"
	EnvOutput     = "SH2MP4_OUTPUT"
	EnvPlayer     = "SH2MP4_PLAYER"
)

// Built-in default values.
const (
	DefaultFPS    = 30
	DefaultOutput = "output.mp4"
	DefaultPlayer = "asciinema"
)

// Defaults holds the values used when the command line leaves a field out.
// It is passed by value and never mutated after Load returns.
type Defaults struct {
	FPS    int    `yaml:"fps"`
	Output string `yaml:"output"`
	Player string `yaml:"player"`
	Cols   int    `yaml:"cols"`
	Lines  int    `yaml:"lines"`
}

// Builtin returns the compiled-in defaults.
func Builtin() Defaults {
	return Defaults{
		FPS:    DefaultFPS,
		Output: DefaultOutput,
		Player: DefaultPlayer,
	}
}

// Validate checks that the defaults can produce a usable plan.
func (d Defaults) Validate() error {
	if d.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", d.FPS)
	}
	if d.Output == "" {
		return errors.New("output must be non-empty")
	}
	if strings.TrimSpace(d.Player) == "" {
		return errors.New("player must be non-empty")
	}
	if d.Cols < 0 || d.Lines < 0 {
		return fmt.Errorf("cols and lines must not be negative, got %dx%d", d.Cols, d.Lines)
	}
	return nil
}

// Load builds the defaults from the built-in values, the file named by
// SH2MP4_CONFIG (if set), and the SH2MP4_* environment overrides.
func Load() (Defaults, error) {
	d := Builtin()

	if path := os.Getenv(EnvConfigFile); path != "" {
		var err error
		d, err = LoadFile(path, d)
		if err != nil {
			return Defaults{}, err
		}
	}

	d, err := applyEnv(d)
	if err != nil {
		return Defaults{}, err
	}

	if err := d.Validate(); err != nil {
		return Defaults{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return d, nil
}

// LoadFile reads a YAML defaults file on top of base.
func LoadFile(path string, base Defaults) (Defaults, error) {
	f, err := os.Open(path) //nolint:gosec // Config path comes from the environment, expected behavior
	if err != nil {
		return Defaults{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, base)
}

// Decode parses YAML defaults from r on top of base. Keys absent from the
// document keep their base value. Unknown keys are an error.
func Decode(r io.Reader, base Defaults) (Defaults, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	d := base
	if err := decoder.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return Defaults{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return d, nil
}

func applyEnv(d Defaults) (Defaults, error) {
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Defaults{}, fmt.Errorf("invalid %s %q: %w", EnvFPS, v, err)
		}
		d.FPS = fps
	}
	if v := os.Getenv(EnvOutput); v != "" {
		d.Output = v
	}
	if v := os.Getenv(EnvPlayer); v != "" {
		d.Player = v
	}
	return d, nil
}
