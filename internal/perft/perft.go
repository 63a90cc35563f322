// Package perft counts the leaf nodes of the chess move tree, the standard
// check on a move generator. Moves are pseudo-legal, so counts match
// published values only while no side can be left in check.
package perft

import (
	"sort"

	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/engine"
	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/hashing"
	"github.com/lgbarn/boardgame-go/internal/notation"
	"github.com/lgbarn/boardgame-go/internal/worker"
)

// Entry is the node count below one root move.
type Entry struct {
	Move  chess.Move
	Nodes uint64
}

// Option configures a perft run.
type Option func(*settings)

type settings struct {
	cache *hashing.ThreadSafeTable
}

// WithCache shares a table of subtree counts between the workers, so
// transposed positions are counted once.
func WithCache(t *hashing.ThreadSafeTable) Option {
	return func(s *settings) {
		s.cache = t
	}
}

// Count returns the number of move paths of length depth from g. The root
// moves are split across workers goroutines, each on its own clone.
func Count(g *engine.Chess, depth, workers int, opts ...Option) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	entries, err := Divide(g, depth, workers, opts...)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total, nil
}

// Divide returns the node count below each root move, sorted by move text.
// g is not modified.
func Divide(g *engine.Chess, depth, workers int, opts ...Option) ([]Entry, error) {
	if depth <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	roots := rootMoves(g)
	results := worker.Run(roots, func(job worker.Job[chess.Move]) worker.Result[Entry] {
		child, err := play(g, job.Value)
		if err != nil {
			return worker.Result[Entry]{Index: job.Index, Err: err}
		}
		return worker.Result[Entry]{
			Index: job.Index,
			Value: Entry{Move: job.Value, Nodes: s.count(child, depth-1)},
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(roots)))

	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		entries = append(entries, r.Value)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, nil
}

func (s *settings) count(g *engine.Chess, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	set := g.AllowedMoveSetForPlayer(g.CurrentPlayer())
	if depth == 1 {
		return uint64(set.Count())
	}

	var key hashing.Key
	if s.cache != nil {
		key = hashing.Key{Hash: hashing.Position(g), Depth: depth}
		if n, ok := s.cache.Probe(key); ok {
			return n
		}
	}

	var nodes uint64
	for _, from := range set.Origins() {
		for _, m := range set[from].Moves() {
			child, err := play(g, m)
			if err != nil {
				continue
			}
			nodes += s.count(child, depth-1)
		}
	}
	if s.cache != nil {
		s.cache.Store(key, nodes)
	}
	return nodes
}

func rootMoves(g *engine.Chess) []chess.Move {
	set := g.AllowedMoveSetForPlayer(g.CurrentPlayer())
	var moves []chess.Move
	for _, from := range set.Origins() {
		moves = append(moves, set[from].Moves()...)
	}
	return moves
}

// play applies m to a clone of g and passes the turn.
func play(g *engine.Chess, m chess.Move) (*engine.Chess, error) {
	child := g.Clone()
	piece := child.Get(m.From)
	if !child.PieceMoved(piece, m).OK() {
		return nil, &errors.MoveError{
			Err:   errors.ErrIllegalMove,
			From:  notation.SquareName(m.From),
			To:    notation.SquareName(m.To),
			Piece: piece.String(),
		}
	}
	child.NextTurn()
	return child, nil
}
