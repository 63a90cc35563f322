package main

import (
	"fmt"
	"log"

	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
	"github.com/lgbarn/boardgame-go/internal/notation"
	"github.com/lgbarn/boardgame-go/internal/output"
)

// boardPiece is a piece that can be drawn in a diagram.
type boardPiece interface {
	game.Piece
	Letter() byte
}

// session plays text moves through a Hand, the way a person would drag
// pieces across the board.
type session[P boardPiece, M game.Move] struct {
	game      game.Game[P, M]
	hand      *game.Hand[P, M]
	logger    *log.Logger
	verbosity int
	played    int
}

func newSession[P boardPiece, M game.Move](g game.Game[P, M], logger *log.Logger, verbosity int) *session[P, M] {
	return &session[P, M]{
		game:      g,
		hand:      game.NewHand(g),
		logger:    logger,
		verbosity: verbosity,
	}
}

// play applies each move in order and stops at the first one that fails.
// Errors carry the 1-based index of the failing move.
func (s *session[P, M]) play(moves []string) error {
	for i, text := range moves {
		if err := s.playOne(text); err != nil {
			return withPly(err, i+1)
		}
		s.played++
	}
	if s.verbosity > 0 && len(moves) > 0 {
		s.logger.Printf("%d move(s) played, %s to move", s.played, s.game.CurrentPlayer().Colour)
	}
	return nil
}

func (s *session[P, M]) playOne(text string) error {
	from, to, err := notation.ParseMove(text)
	if err != nil {
		return err
	}

	mover := s.game.CurrentPlayer().Colour
	if err := s.hand.Pickup(from); err != nil {
		return err
	}
	result, err := s.hand.Drop(to)
	if err != nil {
		return err
	}
	if !result.OK() {
		// Dropped back on its own square.
		return &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			From: notation.SquareName(from),
			To:   notation.SquareName(to),
		}
	}

	if s.verbosity > 1 {
		s.logMove(mover, text, result)
	}
	return nil
}

func (s *session[P, M]) logMove(mover game.Colour, text string, result game.MoveResult) {
	msg := fmt.Sprintf("%s %s", mover, text)
	for _, p := range result.Captured {
		msg += " captures " + notation.SquareName(p)
	}
	if result.Continues {
		msg += ", jump continues"
	}
	s.logger.Print(msg)
}

// report snapshots the position and the legal moves of the side to move.
func (s *session[P, M]) report(variant string) *output.Report {
	glyph := func(p geom.Point) byte { return s.game.Get(p).Letter() }
	r := output.NewReport(variant, s.game.CurrentPlayer().Colour, s.game.BoardSize(), glyph)
	r.SetMoves(output.MovesFromSet(s.game.AllowedMoveSetForPlayer(s.game.CurrentPlayer())))
	return r
}

// withPly records the move index on a MoveError, or wraps other errors
// in one.
func withPly(err error, ply int) error {
	var me *errors.MoveError
	if errors.As(err, &me) {
		me.Ply = ply
		return me
	}
	return &errors.MoveError{Err: err, Ply: ply}
}
