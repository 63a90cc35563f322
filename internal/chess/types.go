// Package chess provides the chess piece and move value types stored on a
// board and exchanged with the chess rule engine.
package chess

import (
	"strings"

	"github.com/lgbarn/boardgame-go/internal/game"
)

// Kind is a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the name of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece kind.
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter returns the kind for an upper or lower case letter.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Piece is the content of one cell. The zero value is an empty cell.
type Piece struct {
	Kind   Kind
	Colour game.Colour

	// HasMoved becomes true the first time the piece is relocated and is
	// never reset. It gates the pawn double step and castling.
	HasMoved bool

	// Present distinguishes an occupied cell from an empty one.
	Present bool
}

// NewPiece returns an unmoved piece.
func NewPiece(kind Kind, colour game.Colour) Piece {
	return Piece{Kind: kind, Colour: colour, Present: true}
}

// W returns an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, game.White)
}

// B returns an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, game.Black)
}

// Empty reports whether the cell holds no piece.
func (p Piece) Empty() bool {
	return !p.Present
}

// BelongsTo reports whether the cell holds a piece of colour c.
func (p Piece) BelongsTo(c game.Colour) bool {
	return p.Present && p.Colour == c
}

// IsWhite reports whether the piece is white.
func (p Piece) IsWhite() bool {
	return p.Colour == game.White
}

// Moved returns a copy with HasMoved set.
func (p Piece) Moved() Piece {
	p.HasMoved = true
	return p
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black,
// '.' for an empty cell.
func (p Piece) Letter() byte {
	if !p.Present {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == game.Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "white knight" or "empty".
func (p Piece) String() string {
	if !p.Present {
		return "empty"
	}
	return strings.ToLower(p.Colour.String() + " " + p.Kind.String())
}
