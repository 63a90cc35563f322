// Package hashing provides Zobrist keys for chess positions and a table of
// perft subtree counts keyed by position and depth.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/engine"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

const squares = engine.ChessSize * engine.ChessSize

// Keys per colour, kind and moved flag on each square. The moved flag is
// part of the position because it decides castling and the pawn double step.
var (
	zobristPieces [2][chess.NumKinds][2][squares]uint64
	zobristBlack  uint64 // XOR when Black is to move
)

func init() {
	// Fixed seed: the same position hashes the same in every run.
	rng := rand.New(rand.NewSource(0x5EEDB0A2D))

	for c := range zobristPieces {
		for k := range zobristPieces[c] {
			for m := range zobristPieces[c][k] {
				for sq := range zobristPieces[c][k][m] {
					zobristPieces[c][k][m][sq] = rng.Uint64()
				}
			}
		}
	}
	zobristBlack = rng.Uint64()
}

// Position returns the Zobrist key of g: its pieces, their moved flags and
// the side to move.
func Position(g *engine.Chess) uint64 {
	var h uint64
	for y := 0; y < engine.ChessSize; y++ {
		for x := 0; x < engine.ChessSize; x++ {
			p := g.Get(geom.Pt(x, y))
			if p.Empty() {
				continue
			}
			h ^= pieceKey(p, y*engine.ChessSize+x)
		}
	}
	if g.CurrentPlayer().Colour == game.Black {
		h ^= zobristBlack
	}
	return h
}

func pieceKey(p chess.Piece, sq int) uint64 {
	c, m := 0, 0
	if p.Colour == game.Black {
		c = 1
	}
	if p.HasMoved {
		m = 1
	}
	return zobristPieces[c][p.Kind][m][sq]
}

// Key identifies a cached subtree.
type Key struct {
	Hash  uint64
	Depth int
}

// Table caches node counts below positions. It is not safe for concurrent
// use; see ThreadSafeTable.
type Table struct {
	entries     map[Key]uint64
	maxCapacity int // 0 means unlimited
	hits        int
}

// NewTable creates a table holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[Key]uint64),
		maxCapacity: maxCapacity,
	}
}

// Probe returns the stored count for k.
func (t *Table) Probe(k Key) (uint64, bool) {
	n, ok := t.entries[k]
	if ok {
		t.hits++
	}
	return n, ok
}

// Store records the count for k. Once the table is full new keys are
// dropped; existing keys are still updated.
func (t *Table) Store(k Key, nodes uint64) {
	if _, ok := t.entries[k]; !ok && t.IsFull() {
		return
	}
	t.entries[k] = nodes
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful probes.
func (t *Table) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table.
func (t *Table) Reset() {
	t.entries = make(map[Key]uint64)
	t.hits = 0
}
