package chess

import (
	"github.com/lgbarn/boardgame-go/internal/geom"
	"github.com/lgbarn/boardgame-go/internal/notation"
)

// MoveKind categorizes chess moves.
type MoveKind int

const (
	Movement MoveKind = iota
	Castling
	// Promotion is reserved; the engine does not generate it.
	Promotion
)

// String returns the name of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Movement:
		return "Movement"
	case Castling:
		return "Castling"
	case Promotion:
		return "Promotion"
	}
	return "Unknown"
}

// Move relocates the piece on From to To.
type Move struct {
	Kind MoveKind
	From geom.Point
	To   geom.Point
}

// NewMove returns a plain movement.
func NewMove(from, to geom.Point) Move {
	return Move{Kind: Movement, From: from, To: to}
}

// NewCastle returns the king's part of a castling move.
func NewCastle(from, to geom.Point) Move {
	return Move{Kind: Castling, From: from, To: to}
}

func (m Move) Origin() geom.Point      { return m.From }
func (m Move) Destination() geom.Point { return m.To }

// IsCastle returns true if this is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == Castling
}

// String returns the long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return notation.MoveName(m.From, m.To)
}
