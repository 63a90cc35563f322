package engine

import (
	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

var (
	straightDirs = []geom.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}
	diagonalDirs = []geom.Point{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}}
	kingSteps    = append(append([]geom.Point{}, straightDirs...), diagonalDirs...)
	knightJumps  = []geom.Point{
		{X: -2, Y: -1}, {X: -2, Y: 1}, {X: 2, Y: -1}, {X: 2, Y: 1},
		{X: -1, Y: -2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: 1, Y: 2},
	}
)

// AllowedMoves returns the pseudo-legal moves for piece standing on from.
// It is a pure function of the board; it never includes from itself or a
// square held by a piece of the same colour.
func (c *Chess) AllowedMoves(piece chess.Piece, from geom.Point) game.MoveSet[chess.Move] {
	moves := game.NewMoveSet[chess.Move]()
	if piece.Empty() {
		return moves
	}

	switch piece.Kind {
	case chess.Pawn:
		c.pawnMoves(moves, piece, from)
	case chess.Knight:
		c.stepMoves(moves, piece, from, knightJumps)
	case chess.Bishop:
		c.slidingMoves(moves, piece, from, diagonalDirs)
	case chess.Rook:
		c.slidingMoves(moves, piece, from, straightDirs)
	case chess.Queen:
		c.slidingMoves(moves, piece, from, straightDirs)
		c.slidingMoves(moves, piece, from, diagonalDirs)
	case chess.King:
		c.stepMoves(moves, piece, from, kingSteps)
		c.castlingMoves(moves, piece, from)
	}

	return moves
}

// slidingMoves walks outward along each direction while cells are empty,
// includes the first occupied cell if it holds an opposing piece, then stops.
func (c *Chess) slidingMoves(moves game.MoveSet[chess.Move], piece chess.Piece, from geom.Point, dirs []geom.Point) {
	for _, d := range dirs {
		for to := from.Add(d); c.IsValid(to); to = to.Add(d) {
			target := c.Get(to)
			if target.Empty() {
				moves.Add(chess.NewMove(from, to))
				continue
			}
			if target.Colour != piece.Colour {
				moves.Add(chess.NewMove(from, to))
			}
			break // Blocked
		}
	}
}

// stepMoves adds each fixed offset that lands on the board on an empty cell
// or an opposing piece.
func (c *Chess) stepMoves(moves game.MoveSet[chess.Move], piece chess.Piece, from geom.Point, offsets []geom.Point) {
	for _, d := range offsets {
		to := from.Add(d)
		if c.emptyAt(to) || c.enemyAt(to, piece.Colour) {
			moves.Add(chess.NewMove(from, to))
		}
	}
}
