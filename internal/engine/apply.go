package engine

import (
	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/game"
)

// PieceMoved applies move for piece after re-validating it against freshly
// generated moves from move.From. A rejected move leaves the board
// untouched. An accepted move writes the piece, marked moved, onto move.To,
// empties move.From (which may already be empty if a front end lifted the
// piece) and relocates the rook of a castling move.
func (c *Chess) PieceMoved(piece chess.Piece, move chess.Move) game.MoveResult {
	if !c.IsValid(move.From) || !c.IsValid(move.To) {
		return game.Rejected()
	}
	if !c.AllowedMoves(piece, move.From).Contains(move) {
		return game.Rejected()
	}

	result := game.Accepted()
	if c.occupied(move.To) {
		result.Captured = append(result.Captured, move.To)
	}

	c.Clear(move.From)
	c.Set(move.To, piece.Moved())

	if move.IsCastle() {
		c.applyCastle(move.To)
	}

	return result
}
