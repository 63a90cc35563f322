// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/boardgame-go/internal/config"
)

var (
	// Game options
	variantName = flag.String("variant", "chess", "Rule set: chess or checkers")
	fenString   = flag.String("fen", "", "Starting position in FEN (chess only)")
	moveList    = flag.String("moves", "", "Moves to play, comma or space separated (e.g. 'e2e4,e7e5')")
	strictTurns = flag.Bool("strict", false, "Only let the side to move pick up pieces (checkers)")

	// Perft options
	perftDepth  = flag.Int("perft", 0, "Count move-tree leaves to this depth (chess only)")
	divideMode  = flag.Bool("divide", false, "Break the perft count down by root move")
	workerCount = flag.Int("workers", 0, "Number of perft workers (0 = one per CPU core)")
	cacheSize   = flag.Int("cache", 0, "Cache up to N perft subtree counts (0 = no cache)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	showCoords = flag.Bool("coords", false, "Label ranks and files on the board")
	ansiBoard  = flag.Bool("ansi", false, "Shade board squares with ANSI colours")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists")

	// Logging
	logFile   = flag.String("log", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 = errors only, 1 = summary, 2 = every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags applies the command-line flags named in set to the
// configuration. Flags left at their defaults keep any environment value.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	if err := applyGameFlags(cfg, set); err != nil {
		return err
	}
	applyPerftFlags(cfg, set)
	applyOutputFlags(cfg, set)

	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyGameFlags configures the variant, starting position and moves.
func applyGameFlags(cfg *config.Config, set map[string]bool) error {
	if set["variant"] {
		v, err := config.ParseVariant(*variantName)
		if err != nil {
			return err
		}
		cfg.Game.Variant = v
	}
	if set["fen"] {
		cfg.Game.FEN = *fenString
	}
	if set["moves"] {
		cfg.Game.Moves = splitMoves(*moveList)
	}
	if set["strict"] {
		cfg.Game.StrictTurns = *strictTurns
	}
	return nil
}

// applyPerftFlags configures perft depth and workers.
func applyPerftFlags(cfg *config.Config, set map[string]bool) {
	if set["perft"] {
		cfg.Perft.Depth = *perftDepth
	}
	if set["divide"] {
		cfg.Perft.Divide = *divideMode
	}
	if set["cache"] {
		cfg.Perft.CacheEntries = *cacheSize
	}
	if set["workers"] && *workerCount > 0 {
		cfg.Perft.Workers = *workerCount
	}
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["json"] {
		cfg.Output.JSONFormat = *jsonOutput
	}
	if set["coords"] {
		cfg.Output.Coords = *showCoords
	}
	if set["ansi"] {
		cfg.Output.ANSI = *ansiBoard
	}
	if set["w"] && *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// splitMoves splits a move list on commas and whitespace. A move written
// with an inner space ("e2 e4") must use the comma form.
func splitMoves(s string) []string {
	sep := func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' }
	if strings.Contains(s, ",") {
		sep = func(r rune) bool { return r == ',' }
	}

	var moves []string
	for _, m := range strings.FieldsFunc(s, sep) {
		if m = strings.TrimSpace(m); m != "" {
			moves = append(moves, m)
		}
	}
	return moves
}
