package game

import (
	"fmt"

	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/geom"
	"github.com/lgbarn/boardgame-go/internal/notation"
)

// Hand is a front end's pick-up/drop session over a Game. A lifted piece is
// removed from its cell and held, with its legal moves cached for
// highlighting, until it is dropped on a legal destination or put back.
type Hand[P Piece, M Move] struct {
	game  Game[P, M]
	held  bool
	from  geom.Point
	piece P
	moves MoveSet[M]
}

// NewHand returns an empty hand over g.
func NewHand[P Piece, M Move](g Game[P, M]) *Hand[P, M] {
	return &Hand[P, M]{game: g}
}

// Pickup lifts the piece at from. The legal moves are computed before the
// cell is cleared.
func (h *Hand[P, M]) Pickup(from geom.Point) error {
	if h.held {
		return &errors.MoveError{Err: errors.ErrAlreadyHolding, From: notation.SquareName(h.from)}
	}
	if !h.game.IsValid(from) {
		return &errors.MoveError{Err: errors.ErrInvalidPosition, From: notation.SquareName(from)}
	}
	if !h.game.CanPickupPiece(from) {
		return &errors.MoveError{Err: errors.ErrCannotPickup, From: notation.SquareName(from)}
	}

	var empty P
	h.piece = h.game.Get(from)
	h.from = from
	h.moves = h.game.AllowedMoves(h.piece, from)
	h.held = true
	h.game.Set(from, empty)
	return nil
}

// Drop places the held piece on to. Dropping on the origin puts the piece
// back and returns a rejected result with no error. A drop on a square no
// legal move ends on, or one the game rejects, also puts the piece back and
// returns ErrIllegalMove. An accepted drop passes the turn unless the result
// asks the same piece to continue.
func (h *Hand[P, M]) Drop(to geom.Point) (MoveResult, error) {
	if !h.held {
		return Rejected(), &errors.MoveError{Err: errors.ErrNothingHeld, To: notation.SquareName(to)}
	}
	if to == h.from {
		h.restore()
		return Rejected(), nil
	}

	candidates := h.moves.EndingOn(to)
	if len(candidates) == 0 {
		err := h.illegal(to)
		h.restore()
		return Rejected(), err
	}

	result := h.game.PieceMoved(h.piece, candidates[0])
	if !result.OK() {
		err := h.illegal(to)
		h.restore()
		return result, err
	}

	h.release()
	if !result.Continues {
		h.game.NextTurn()
	}
	return result, nil
}

// Cancel puts the held piece back on its origin.
func (h *Hand[P, M]) Cancel() error {
	if !h.held {
		return errors.ErrNothingHeld
	}
	h.restore()
	return nil
}

// Held returns the held piece and its origin.
func (h *Hand[P, M]) Held() (P, geom.Point, bool) {
	return h.piece, h.from, h.held
}

// Moves returns the cached legal moves of the held piece.
func (h *Hand[P, M]) Moves() MoveSet[M] {
	if !h.held {
		return nil
	}
	return h.moves
}

// Targets returns the destinations to highlight for the held piece.
func (h *Hand[P, M]) Targets() []geom.Point {
	if !h.held {
		return nil
	}
	return h.moves.Destinations()
}

func (h *Hand[P, M]) illegal(to geom.Point) error {
	return &errors.MoveError{
		Err:   errors.ErrIllegalMove,
		From:  notation.SquareName(h.from),
		To:    notation.SquareName(to),
		Piece: fmt.Sprint(h.piece),
	}
}

func (h *Hand[P, M]) restore() {
	h.game.Set(h.from, h.piece)
	h.release()
}

func (h *Hand[P, M]) release() {
	var empty P
	h.piece = empty
	h.held = false
	h.moves = nil
}
