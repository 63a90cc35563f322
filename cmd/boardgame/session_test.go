package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/lgbarn/boardgame-go/internal/checkers"
	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/engine"
	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/notation"
	"github.com/lgbarn/boardgame-go/internal/testutil"
)

func chessSession(t *testing.T, verbosity int) (*engine.Chess, *session[chess.Piece, chess.Move], *bytes.Buffer) {
	t.Helper()
	var logBuf bytes.Buffer
	g := engine.NewChess()
	return g, newSession[chess.Piece, chess.Move](g, log.New(&logBuf, "", 0), verbosity), &logBuf
}

func chessAt(t *testing.T, g *engine.Chess, name string) chess.Piece {
	t.Helper()
	p, err := notation.ParseSquare(name)
	testutil.AssertNoError(t, err)
	return g.Get(p)
}

func TestSessionPlaysMoves(t *testing.T) {
	t.Parallel()
	g, s, _ := chessSession(t, 0)

	testutil.AssertNoError(t, s.play([]string{"e2e4", "e7-e5", "g1 f3"}))

	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1")
	testutil.AssertEqual(t, s.played, 3)
	testutil.AssertEqual(t, g.CurrentPlayer().Colour, game.Black)
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name    string
		moves   []string
		wantErr error
		wantPly int
	}{
		{"unparseable", []string{"hello"}, errors.ErrParseFailure, 1},
		{"empty square", []string{"e4e5"}, errors.ErrCannotPickup, 1},
		{"wrong side", []string{"e2e4", "d2d4"}, errors.ErrCannotPickup, 2},
		{"illegal destination", []string{"e2e5"}, errors.ErrIllegalMove, 1},
		{"dropped on origin", []string{"e2e4", "e7e7"}, errors.ErrIllegalMove, 2},
		{"off board", []string{"e2e9"}, errors.ErrIllegalMove, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, s, _ := chessSession(t, 0)

			err := s.play(tt.moves)
			testutil.AssertErrorIs(t, err, tt.wantErr)

			var me *errors.MoveError
			testutil.AssertTrue(t, errors.As(err, &me), "want MoveError, got %T", err)
			testutil.AssertEqual(t, me.Ply, tt.wantPly)
			testutil.AssertEqual(t, s.played, tt.wantPly-1)

			// A failed move leaves the board as the last good move left it.
			testutil.AssertEqual(t, chessAt(t, g, "e2").Empty(), tt.wantPly == 2)
		})
	}
}

func TestSessionLogsMoves(t *testing.T) {
	t.Parallel()
	_, s, logBuf := chessSession(t, 2)

	testutil.AssertNoError(t, s.play([]string{"e2e4", "d7d5", "e4d5"}))

	out := logBuf.String()
	testutil.AssertContains(t, out, "White e2e4\n")
	testutil.AssertContains(t, out, "White e4d5 captures d5\n")
	testutil.AssertContains(t, out, "3 move(s) played, Black to move\n")
}

func TestSessionQuiet(t *testing.T) {
	t.Parallel()
	_, s, logBuf := chessSession(t, 0)

	testutil.AssertNoError(t, s.play([]string{"e2e4"}))
	testutil.AssertEqual(t, logBuf.Len(), 0)
}

func TestSessionReport(t *testing.T) {
	t.Parallel()
	_, s, _ := chessSession(t, 0)
	testutil.AssertNoError(t, s.play([]string{"e2e4", "e7e5"}))

	r := s.report("chess")

	testutil.AssertEqual(t, r.Variant, "chess")
	testutil.AssertEqual(t, r.ToMove, "White")
	testutil.AssertEqual(t, r.MoveCount, 29)
	testutil.AssertEqual(t, r.Board[3], "....p...", "rank 5")
	testutil.AssertEqual(t, r.Board[4], "....P...", "rank 4")
}

func TestSessionCheckersJumpSequence(t *testing.T) {
	t.Parallel()
	var logBuf bytes.Buffer
	g := engine.NewCheckers()
	s := newSession[checkers.Piece, checkers.Move](g, log.New(&logBuf, "", 0), 2)

	testutil.AssertNoError(t, s.play([]string{"c3d4", "f6e5", "d4xf6"}))

	testutil.AssertContains(t, logBuf.String(), "White d4xf6 captures e5\n")
	testutil.AssertEqual(t, g.CurrentPlayer().Colour, game.Black)

	r := s.report("checkers")
	testutil.AssertEqual(t, r.MoveCount, 2, "black must recapture")
	for _, m := range r.Moves {
		testutil.AssertTrue(t, m.To == "e5" || m.To == "g5", "unexpected move %s", m.Text)
	}
}

func TestWithPly(t *testing.T) {
	t.Parallel()

	plain := withPly(errors.ErrInvalidFEN, 4)
	testutil.AssertErrorIs(t, plain, errors.ErrInvalidFEN)
	testutil.AssertContains(t, plain.Error(), "move 4")

	me := &errors.MoveError{Err: errors.ErrIllegalMove, From: "e2", To: "e5"}
	testutil.AssertEqual(t, withPly(me, 2).Error(), "move 2, e2-e5: illegal move")
}
