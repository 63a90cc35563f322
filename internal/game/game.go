// Package game defines the rule-set independent board game contract: pieces
// and moves as type parameters, the two-player turn model, legal-move sets,
// and the shared board/turn state each rule engine embeds.
package game

import (
	"github.com/lgbarn/boardgame-go/internal/board"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

// Piece is the constraint satisfied by every rule set's cell type. The zero
// value must be the empty cell.
type Piece interface {
	comparable
	Empty() bool
	BelongsTo(c Colour) bool
}

// MoveResult reports the outcome of applying a move.
type MoveResult struct {
	// Valid is false when the move was rejected and the board left unchanged.
	Valid bool

	// Continues is set when the same piece must move again before the turn
	// passes (checkers multi-jumps).
	Continues bool

	// Captured lists the squares whose pieces were removed by the move.
	Captured []geom.Point
}

// Accepted returns a successful result.
func Accepted() MoveResult {
	return MoveResult{Valid: true}
}

// Rejected returns a failed result.
func Rejected() MoveResult {
	return MoveResult{}
}

// OK reports whether the move was applied.
func (r MoveResult) OK() bool {
	return r.Valid
}

// Game is the API a front end drives. Implementations are single-threaded;
// callers serialise all calls on one goroutine.
type Game[P Piece, M Move] interface {
	// ResetBoard clears every cell and places the starting pieces.
	ResetBoard()

	// CanPickupPiece reports whether the piece at from may be lifted.
	CanPickupPiece(from geom.Point) bool

	// AllowedMoves returns the legal moves for piece standing on from.
	// It never mutates the board.
	AllowedMoves(piece P, from geom.Point) MoveSet[M]

	// PieceMoved applies move for piece if it is legal, or leaves the
	// board unchanged and returns a rejected result.
	PieceMoved(piece P, move M) MoveResult

	// AllowedMoveSetForPlayer collects the non-empty move sets of the
	// player's pieces.
	AllowedMoveSetForPlayer(player Player) PlayerMoveSet[M]

	NextTurn()
	CurrentPlayer() Player

	Get(p geom.Point) P
	Set(p geom.Point, piece P)
	IsValid(p geom.Point) bool
	BoardSize() geom.Size
}

// Base holds the state shared by rule engines: the board and the turn
// cursor. Engines embed it and supply the rule methods.
type Base[P Piece, M Move] struct {
	board *board.Board[P]
	turns *Turns
}

// NewBase creates an empty width×height board with White to move.
func NewBase[P Piece, M Move](width, height int) (Base[P, M], error) {
	b, err := board.New[P](width, height)
	if err != nil {
		return Base[P, M]{}, err
	}
	return Base[P, M]{board: b, turns: NewTurns()}, nil
}

// MustNewBase is like NewBase but panics on invalid dimensions.
func MustNewBase[P Piece, M Move](width, height int) Base[P, M] {
	b, err := NewBase[P, M](width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// Board exposes the underlying storage to the embedding engine.
func (b *Base[P, M]) Board() *board.Board[P] {
	return b.board
}

// Turns exposes the turn cursor to the embedding engine.
func (b *Base[P, M]) Turns() *Turns {
	return b.turns
}

// Get returns the piece at p. p must be valid.
func (b *Base[P, M]) Get(p geom.Point) P {
	return b.board.Get(p.X, p.Y)
}

// Set stores piece at p. p must be valid.
func (b *Base[P, M]) Set(p geom.Point, piece P) {
	b.board.Set(p.X, p.Y, piece)
}

// Clear empties the cell at p. p must be valid.
func (b *Base[P, M]) Clear(p geom.Point) {
	var empty P
	b.board.Set(p.X, p.Y, empty)
}

// IsValid reports whether 0 <= p.X < width and 0 <= p.Y < height.
func (b *Base[P, M]) IsValid(p geom.Point) bool {
	return b.board.Contains(p)
}

func (b *Base[P, M]) BoardSize() geom.Size { return b.board.Size() }

func (b *Base[P, M]) NextTurn()             { b.turns.Next() }
func (b *Base[P, M]) CurrentPlayer() Player { return b.turns.Current() }
func (b *Base[P, M]) PlayerCount() int      { return b.turns.Len() }

// ClearBoard sets every cell to the empty piece.
func (b *Base[P, M]) ClearBoard() {
	var empty P
	b.board.Fill(empty)
}

// MoveSetForPlayer scans every cell and, for each piece belonging to
// player, records allowed(piece, origin) when it is non-empty.
func (b *Base[P, M]) MoveSetForPlayer(player Player, allowed func(P, geom.Point) MoveSet[M]) PlayerMoveSet[M] {
	set := make(PlayerMoveSet[M])
	b.board.Each(func(p geom.Point, piece P) {
		if !piece.BelongsTo(player.Colour) {
			return
		}
		if moves := allowed(piece, p); !moves.Empty() {
			set[p] = moves
		}
	})
	return set
}

// CloneBase returns an independent copy of the board and turn cursor.
func (b *Base[P, M]) CloneBase() Base[P, M] {
	return Base[P, M]{board: b.board.Clone(), turns: b.turns.clone()}
}
