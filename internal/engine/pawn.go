package engine

import (
	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

// pawnMoves adds the single step, the double step for an unmoved pawn, and
// the two diagonal captures. Both squares of a double step must be empty.
// En passant and promotion are not generated.
func (c *Chess) pawnMoves(moves game.MoveSet[chess.Move], pawn chess.Piece, from geom.Point) {
	forward := geom.Pt(0, pawn.Colour.Forward())

	next := from.Add(forward)
	if c.emptyAt(next) {
		moves.Add(chess.NewMove(from, next))

		if !pawn.HasMoved {
			next2 := next.Add(forward)
			if c.emptyAt(next2) {
				moves.Add(chess.NewMove(from, next2))
			}
		}
	}

	// Captures
	for dx := -1; dx <= 1; dx += 2 {
		to := next.Add(geom.Pt(dx, 0))
		if c.enemyAt(to, pawn.Colour) {
			moves.Add(chess.NewMove(from, to))
		}
	}
}
