package config

import (
	"fmt"

	"github.com/lgbarn/boardgame-go/internal/errors"
)

// GameConfig holds settings for the game being played.
type GameConfig struct {
	// Variant selects the rule set.
	Variant Variant

	// FEN is an optional chess starting position.
	FEN string

	// Moves are applied in order, each as "e2e4", "e2-e4" or "e2 e4".
	Moves []string

	// StrictTurns makes checkers only let the player to move pick up pieces.
	StrictTurns bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{Variant: Chess}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if _, err := ParseVariant(string(g.Variant)); err != nil {
		return err
	}
	if g.FEN != "" && g.Variant != Chess {
		return fmt.Errorf("FEN setup is only supported for chess, not %s: %w",
			g.Variant, errors.ErrInvalidConfig)
	}
	return nil
}
