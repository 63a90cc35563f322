package engine

import (
	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

// Columns the king lands on when castling, and where the rook goes for
// each. These are tied to the 8-wide chess board.
const (
	queensideKingCol = 2
	queensideRookCol = 3
	kingsideKingCol  = 6
	kingsideRookCol  = 5
)

// castlingMoves adds a castling move towards each edge column holding an
// unmoved rook of the king's colour with only empty squares in between.
// The king's two-square step must stop short of the rook, so a king within
// two columns of the corner cannot castle that way. Whether the king passes
// through or lands in check is not verified.
func (c *Chess) castlingMoves(moves game.MoveSet[chess.Move], king chess.Piece, from geom.Point) {
	if king.HasMoved {
		return
	}

	b := c.Board()
	for _, x := range []int{b.FirstColumn(), b.LastColumn()} {
		corner := geom.Pt(x, from.Y)
		if corner == from {
			continue
		}
		rook := c.Get(corner)
		if !rook.BelongsTo(king.Colour) || rook.Kind != chess.Rook || rook.HasMoved {
			continue
		}
		if geom.Abs(x-from.X) <= 2 || !c.rowClear(from, corner) {
			continue
		}

		to := from.Add(geom.Pt(2*geom.Sign(x-from.X), 0))
		if !c.occupied(to) {
			moves.Add(chess.NewCastle(from, to))
		}
	}
}

// applyCastle relocates the rook belonging to a castling king move that has
// landed on to. The rook is marked moved and its origin cleared.
func (c *Chess) applyCastle(to geom.Point) {
	b := c.Board()

	var rookFrom, rookTo geom.Point
	switch to.X {
	case queensideKingCol:
		rookFrom, rookTo = geom.Pt(b.FirstColumn(), to.Y), geom.Pt(queensideRookCol, to.Y)
	case kingsideKingCol:
		rookFrom, rookTo = geom.Pt(b.LastColumn(), to.Y), geom.Pt(kingsideRookCol, to.Y)
	default:
		return
	}

	rook := c.Get(rookFrom)
	c.Clear(rookFrom)
	c.Set(rookTo, rook.Moved())
}

// rowClear reports whether every square strictly between a and b on the
// same row is empty.
func (c *Chess) rowClear(a, b geom.Point) bool {
	step := geom.Pt(geom.Sign(b.X-a.X), 0)
	for p := a.Add(step); p != b; p = p.Add(step) {
		if !c.Get(p).Empty() {
			return false
		}
	}
	return true
}
