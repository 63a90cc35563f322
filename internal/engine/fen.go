package engine

import (
	"fmt"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/boardgame-go/internal/chess"
	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenKinds = map[notnil.PieceType]chess.Kind{
	notnil.Pawn:   chess.Pawn,
	notnil.Knight: chess.Knight,
	notnil.Bishop: chess.Bishop,
	notnil.Rook:   chess.Rook,
	notnil.Queen:  chess.Queen,
	notnil.King:   chess.King,
}

// NewChessFromFEN sets up a game from a FEN string. The en passant square
// and move counters are accepted but ignored. HasMoved is inferred: pawns
// off their start rank, kings and rooks off their home squares, and kings
// or corner rooks whose castling right is gone are marked moved.
func NewChessFromFEN(fen string) (*Chess, error) {
	opt, err := notnil.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidFEN, err)
	}
	pos := notnil.NewGame(opt).Position()
	rights := pos.CastleRights()

	c := NewEmptyChess()
	for sq, p := range pos.Board().SquareMap() {
		kind, ok := fenKinds[p.Type()]
		if !ok {
			continue
		}
		colour := game.White
		if p.Color() == notnil.Black {
			colour = game.Black
		}
		at := geom.Pt(int(sq.File()), int(sq.Rank()))

		piece := chess.NewPiece(kind, colour)
		if hasMoved(piece, at, rights) {
			piece = piece.Moved()
		}
		c.Set(at, piece)
	}

	if pos.Turn() == notnil.Black {
		c.Turns().SetCurrent(game.Black)
	}
	return c, nil
}

// hasMoved infers the moved flag of a piece read from a FEN position.
func hasMoved(p chess.Piece, at geom.Point, rights notnil.CastleRights) bool {
	colour := notnil.White
	home := 0
	if p.Colour == game.Black {
		colour = notnil.Black
		home = ChessSize - 1
	}

	switch p.Kind {
	case chess.Pawn:
		return at.Y != home+p.Colour.Forward()
	case chess.King:
		if at != geom.Pt(4, home) {
			return true
		}
		return !rights.CanCastle(colour, notnil.KingSide) && !rights.CanCastle(colour, notnil.QueenSide)
	case chess.Rook:
		switch at {
		case geom.Pt(0, home):
			return !rights.CanCastle(colour, notnil.QueenSide)
		case geom.Pt(ChessSize-1, home):
			return !rights.CanCastle(colour, notnil.KingSide)
		}
		return true
	}
	return false
}

// FEN renders the position. Castling rights are derived from unmoved kings
// and corner rooks; the en passant field and counters are always "- 0 1".
func (c *Chess) FEN() string {
	b := c.Board()
	var sb strings.Builder

	for y := b.LastRow(); y >= b.FirstRow(); y-- {
		run := 0
		for x := b.FirstColumn(); x <= b.LastColumn(); x++ {
			p := b.Get(x, y)
			if p.Empty() {
				run++
				continue
			}
			if run > 0 {
				fmt.Fprintf(&sb, "%d", run)
				run = 0
			}
			sb.WriteByte(p.Letter())
		}
		if run > 0 {
			fmt.Fprintf(&sb, "%d", run)
		}
		if y > b.FirstRow() {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if c.CurrentPlayer().Colour == game.Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s %s - 0 1", side, c.castlingField())
	return sb.String()
}

func (c *Chess) castlingField() string {
	var sb strings.Builder
	for _, colour := range []game.Colour{game.White, game.Black} {
		home := 0
		if colour == game.Black {
			home = ChessSize - 1
		}
		king := c.Get(geom.Pt(4, home))
		if king.Kind != chess.King || !king.BelongsTo(colour) || king.HasMoved {
			continue
		}
		for _, side := range []struct {
			x      int
			letter byte
		}{{ChessSize - 1, 'K'}, {0, 'Q'}} {
			rook := c.Get(geom.Pt(side.x, home))
			if rook.Kind != chess.Rook || !rook.BelongsTo(colour) || rook.HasMoved {
				continue
			}
			l := side.letter
			if colour == game.Black {
				l += 'a' - 'A'
			}
			sb.WriteByte(l)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
