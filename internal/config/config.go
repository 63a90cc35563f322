// Package config provides configuration for the boardgame front end.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/boardgame-go/internal/errors"
)

// Variant names a rule set.
type Variant string

const (
	Chess    Variant = "chess"
	Checkers Variant = "checkers"
)

// Variants lists the supported rule sets.
var Variants = []Variant{Chess, Checkers}

// ParseVariant returns the variant named s, ignoring case.
func ParseVariant(s string) (Variant, error) {
	name := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Variants {
		if name == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, errors.ErrUnknownVariant)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=every move

	Game   *GameConfig
	Output *OutputConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if c.Perft.Depth > 0 && c.Game.Variant != Chess {
		return fmt.Errorf("perft requires the chess variant: %w", errors.ErrInvalidConfig)
	}
	return nil
}
