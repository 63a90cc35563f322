package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/boardgame-go/internal/errors"
)

// MaxPerftDepth bounds perft runs; the tree grows roughly 30x per ply.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth is the number of plies to count. Zero disables perft.
	Depth int

	// Divide reports the count below each root move.
	Divide bool

	// Workers is the number of goroutines sharing the root moves.
	Workers int

	// CacheEntries bounds the table of subtree counts shared by the
	// workers. Zero disables the table.
	CacheEntries int
}

// NewPerftConfig creates a PerftConfig with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: runtime.NumCPU()}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.CacheEntries < 0 {
		return fmt.Errorf("cache entries %d: %w", p.CacheEntries, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
