// Package engine provides the rule engines that implement game.Game: chess
// with full move generation and application, and checkers.
package engine

import (
	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

// ChessSize is the width and height of a chess board.
const ChessSize = 8

// backRank lists the pieces placed on each side's first row, from column 0.
var backRank = [ChessSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// Chess is the chess rule engine. Check and checkmate are not evaluated:
// the generated moves are pseudo-legal.
type Chess struct {
	game.Base[chess.Piece, chess.Move]
}

var _ game.Game[chess.Piece, chess.Move] = (*Chess)(nil)

// NewChess returns a game in the standard starting position with White to move.
func NewChess() *Chess {
	c := NewEmptyChess()
	c.ResetBoard()
	return c
}

// NewEmptyChess returns a game with an empty board, for custom setups.
func NewEmptyChess() *Chess {
	return &Chess{Base: game.MustNewBase[chess.Piece, chess.Move](ChessSize, ChessSize)}
}

// ResetBoard clears the board, places both armies and gives White the move.
func (c *Chess) ResetBoard() {
	b := c.Board()
	c.ClearBoard()

	for x, kind := range backRank {
		b.Set(x, b.FirstRow(), chess.W(kind))
		b.Set(x, b.FirstRow()+1, chess.W(chess.Pawn))

		b.Set(x, b.LastRow(), chess.B(kind))
		b.Set(x, b.LastRow()-1, chess.B(chess.Pawn))
	}
	c.Turns().Reset()
}

// CanPickupPiece reports whether from holds a piece of the player to move.
func (c *Chess) CanPickupPiece(from geom.Point) bool {
	return c.IsValid(from) && c.Get(from).BelongsTo(c.CurrentPlayer().Colour)
}

// AllowedMoveSetForPlayer returns the move sets of every piece of player
// that has at least one move.
func (c *Chess) AllowedMoveSetForPlayer(player game.Player) game.PlayerMoveSet[chess.Move] {
	return c.MoveSetForPlayer(player, c.AllowedMoves)
}

// Clone returns an independent copy of the game.
func (c *Chess) Clone() *Chess {
	return &Chess{Base: c.CloneBase()}
}

// occupied reports whether p is on the board and holds a piece.
func (c *Chess) occupied(p geom.Point) bool {
	return c.IsValid(p) && !c.Get(p).Empty()
}

// enemyAt reports whether p is on the board and holds a piece not of colour.
func (c *Chess) enemyAt(p geom.Point, colour game.Colour) bool {
	return c.occupied(p) && c.Get(p).Colour != colour
}

// emptyAt reports whether p is on the board and holds no piece.
func (c *Chess) emptyAt(p geom.Point) bool {
	return c.IsValid(p) && c.Get(p).Empty()
}
