// Package checkers provides the checkers piece and move value types.
package checkers

import (
	"strings"

	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
	"github.com/lgbarn/boardgame-go/internal/notation"
)

// Kind is a checkers piece type.
type Kind int

const (
	Man Kind = iota
	King
)

// String returns the name of a piece kind.
func (k Kind) String() string {
	if k == King {
		return "King"
	}
	return "Man"
}

// Piece is the content of one cell. The zero value is an empty cell.
type Piece struct {
	Kind    Kind
	Colour  game.Colour
	Present bool
}

// NewPiece returns a piece of the given kind.
func NewPiece(kind Kind, colour game.Colour) Piece {
	return Piece{Kind: kind, Colour: colour, Present: true}
}

func (p Piece) Empty() bool                  { return !p.Present }
func (p Piece) BelongsTo(c game.Colour) bool { return p.Present && p.Colour == c }

// Crowned returns a copy promoted to King.
func (p Piece) Crowned() Piece {
	p.Kind = King
	return p
}

// Letter returns 'w'/'b' for men, 'W'/'B' for kings and '.' for empty.
func (p Piece) Letter() byte {
	if !p.Present {
		return '.'
	}
	l := byte('w')
	if p.Colour == game.Black {
		l = 'b'
	}
	if p.Kind == King {
		l -= 'a' - 'A'
	}
	return l
}

func (p Piece) String() string {
	if !p.Present {
		return "empty"
	}
	return strings.ToLower(p.Colour.String() + " " + p.Kind.String())
}

// MoveKind distinguishes a plain diagonal step from a capturing jump.
type MoveKind int

const (
	Step MoveKind = iota
	Jump
)

// Move relocates the piece on From to To. A Jump captures the piece on the
// square between them.
type Move struct {
	Kind MoveKind
	From geom.Point
	To   geom.Point
}

// NewStep returns a non-capturing diagonal step.
func NewStep(from, to geom.Point) Move {
	return Move{Kind: Step, From: from, To: to}
}

// NewJump returns a capturing jump over the square between from and to.
func NewJump(from, to geom.Point) Move {
	return Move{Kind: Jump, From: from, To: to}
}

func (m Move) Origin() geom.Point      { return m.From }
func (m Move) Destination() geom.Point { return m.To }

// Captured returns the jumped square. It is only meaningful for jumps.
func (m Move) Captured() geom.Point {
	return geom.Pt((m.From.X+m.To.X)/2, (m.From.Y+m.To.Y)/2)
}

// String returns "c3d4" for steps and "c3xe5" for jumps.
func (m Move) String() string {
	if m.Kind == Jump {
		return notation.SquareName(m.From) + "x" + notation.SquareName(m.To)
	}
	return notation.MoveName(m.From, m.To)
}
