package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/lgbarn/boardgame-go/internal/errors"
)

// EnvPrefix is the prefix of the environment variables read by LoadEnv.
const EnvPrefix = "BOARDGAME"

// envVars mirrors the settings that may come from the environment, e.g.
// BOARDGAME_VARIANT=checkers or BOARDGAME_WORKERS=4. Unset variables leave
// the defaults alone.
type envVars struct {
	Variant     string   `envconfig:"VARIANT"`
	FEN         string   `envconfig:"FEN"`
	Moves       []string `envconfig:"MOVES"`
	StrictTurns *bool    `envconfig:"STRICT"`
	JSON        *bool    `envconfig:"JSON"`
	Coords      *bool    `envconfig:"COORDS"`
	ANSI        *bool    `envconfig:"ANSI"`
	LineLength  *uint    `envconfig:"LINE_LENGTH"`
	Workers     *int     `envconfig:"WORKERS"`
	Cache       *int     `envconfig:"CACHE"`
	Verbosity   *int     `envconfig:"VERBOSITY"`
}

// LoadEnv returns the defaults overridden by prefix_* environment variables.
func LoadEnv(prefix string) (*Config, error) {
	cfg := NewConfig()
	if err := ApplyEnv(cfg, prefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any prefix_* environment variables that are set.
func ApplyEnv(cfg *Config, prefix string) error {
	var env envVars
	if err := envconfig.Process(prefix, &env); err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	if env.Variant != "" {
		v, err := ParseVariant(env.Variant)
		if err != nil {
			return err
		}
		cfg.Game.Variant = v
	}
	if env.FEN != "" {
		cfg.Game.FEN = env.FEN
	}
	if len(env.Moves) > 0 {
		cfg.Game.Moves = env.Moves
	}
	setIf(&cfg.Game.StrictTurns, env.StrictTurns)
	setIf(&cfg.Output.JSONFormat, env.JSON)
	setIf(&cfg.Output.Coords, env.Coords)
	setIf(&cfg.Output.ANSI, env.ANSI)
	setIf(&cfg.Output.MaxLineLength, env.LineLength)
	setIf(&cfg.Perft.Workers, env.Workers)
	setIf(&cfg.Perft.CacheEntries, env.Cache)
	setIf(&cfg.Verbosity, env.Verbosity)
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
