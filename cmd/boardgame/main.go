// boardgame plays chess or checkers positions from the command line: it
// applies a move list, prints the board with the legal replies, and counts
// chess move trees with perft.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/boardgame-go/internal/checkers"
	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/config"
	"github.com/lgbarn/boardgame-go/internal/engine"
	"github.com/lgbarn/boardgame-go/internal/hashing"
	"github.com/lgbarn/boardgame-go/internal/notation"
	"github.com/lgbarn/boardgame-go/internal/output"
	"github.com/lgbarn/boardgame-go/internal/perft"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("boardgame version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.LoadEnv(config.EnvPrefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg, setFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Game.Moves = append(cfg.Game.Moves, args...)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// run plays the configured game and writes one report.
func run(cfg *config.Config) error {
	logger := log.New(cfg.LogFile, "", 0)

	var (
		report *output.Report
		err    error
	)
	switch cfg.Game.Variant {
	case config.Checkers:
		report, err = runCheckers(cfg, logger)
	default:
		report, err = runChess(cfg, logger)
	}
	if err != nil {
		return err
	}

	writer := newReportWriter(cfg, cfg.OutputFile)
	if err := writer.WriteReport(report); err != nil {
		return err
	}
	return writer.Close()
}

func runChess(cfg *config.Config, logger *log.Logger) (*output.Report, error) {
	g := engine.NewChess()
	if cfg.Game.FEN != "" {
		var err error
		if g, err = engine.NewChessFromFEN(cfg.Game.FEN); err != nil {
			return nil, err
		}
	}

	s := newSession[chess.Piece, chess.Move](g, logger, cfg.Verbosity)
	if err := s.play(cfg.Game.Moves); err != nil {
		return nil, err
	}

	report := s.report(string(config.Chess))
	report.FEN = g.FEN()
	if cfg.Perft.Depth > 0 {
		if err := addPerft(report, g, cfg.Perft, logger, cfg.Verbosity); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func runCheckers(cfg *config.Config, logger *log.Logger) (*output.Report, error) {
	g := engine.NewCheckers(engine.WithStrictTurns(cfg.Game.StrictTurns))
	s := newSession[checkers.Piece, checkers.Move](g, logger, cfg.Verbosity)
	if err := s.play(cfg.Game.Moves); err != nil {
		return nil, err
	}
	if at, ok := g.Jumping(); ok && cfg.Verbosity > 0 {
		logger.Printf("jump in progress from %s", notation.SquareName(at))
	}
	return s.report(string(config.Checkers)), nil
}

// addPerft fills in the perft section of report.
func addPerft(report *output.Report, g *engine.Chess, pc *config.PerftConfig, logger *log.Logger, verbosity int) error {
	report.PerftDepth = pc.Depth

	var opts []perft.Option
	var cache *hashing.ThreadSafeTable
	if pc.CacheEntries > 0 {
		cache = hashing.NewThreadSafeTable(pc.CacheEntries)
		opts = append(opts, perft.WithCache(cache))
		defer func() {
			if verbosity > 1 {
				logger.Printf("perft cache: %d entries, %d hits", cache.Len(), cache.Hits())
			}
		}()
	}

	if !pc.Divide {
		nodes, err := perft.Count(g, pc.Depth, pc.Workers, opts...)
		if err != nil {
			return err
		}
		report.PerftNodes = nodes
		return nil
	}

	entries, err := perft.Divide(g, pc.Depth, pc.Workers, opts...)
	if err != nil {
		return err
	}
	for _, e := range entries {
		report.Divide = append(report.Divide, output.JSONDivide{Move: e.Move.String(), Nodes: e.Nodes})
		report.PerftNodes += e.Nodes
	}
	if verbosity > 0 {
		logger.Printf("perft(%d): %d root moves on %d worker(s)", pc.Depth, len(entries), pc.Workers)
	}
	return nil
}

// newReportWriter picks the text or JSON writer.
func newReportWriter(cfg *config.Config, w io.Writer) output.ReportWriter {
	if cfg.Output.JSONFormat {
		return output.NewJSONWriterSingle(w)
	}
	opts := output.DefaultBoardOptions()
	opts.Coords = cfg.Output.Coords
	opts.ANSI = cfg.Output.ANSI
	return output.NewTextWriter(w, opts, int(cfg.Output.MaxLineLength))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: boardgame [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess or checkers moves and prints the resulting position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are two squares, e.g. e2e4, e2-e4 or d4xe5.\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment (overridden by flags):\n")
	fmt.Fprintf(os.Stderr, "  %s_VARIANT, _FEN, _MOVES, _STRICT, _JSON, _COORDS, _ANSI,\n", config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "  _LINE_LENGTH, _WORKERS, _CACHE, _VERBOSITY\n")
}
