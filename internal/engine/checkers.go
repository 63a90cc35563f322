package engine

import (
	"github.com/lgbarn/boardgame-go/internal/checkers"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

// CheckersSize is the width and height of a checkers board.
const CheckersSize = 8

// Checkers is the checkers rule engine. Captures are mandatory and a piece
// that has just jumped keeps the turn while it can jump again.
type Checkers struct {
	game.Base[checkers.Piece, checkers.Move]

	strictTurns bool

	// chain is the square of a piece in the middle of a multi-jump.
	chain *geom.Point
}

var _ game.Game[checkers.Piece, checkers.Move] = (*Checkers)(nil)

// CheckersOption configures a Checkers game.
type CheckersOption func(*Checkers)

// WithStrictTurns makes CanPickupPiece require the piece to belong to the
// player to move. Without it any occupied square may be picked up.
func WithStrictTurns(strict bool) CheckersOption {
	return func(c *Checkers) {
		c.strictTurns = strict
	}
}

// NewCheckers returns a game in the starting layout with White to move.
func NewCheckers(opts ...CheckersOption) *Checkers {
	c := NewEmptyCheckers(opts...)
	c.ResetBoard()
	return c
}

// NewEmptyCheckers returns a game with an empty board.
func NewEmptyCheckers(opts ...CheckersOption) *Checkers {
	c := &Checkers{Base: game.MustNewBase[checkers.Piece, checkers.Move](CheckersSize, CheckersSize)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResetBoard places a man on alternating squares of every row except the
// two centre rows. Rows in the lower half are White.
func (c *Checkers) ResetBoard() {
	b := c.Board()
	c.ClearBoard()
	c.chain = nil

	for y := b.FirstRow(); y <= b.LastRow(); y++ {
		if y == 3 || y == 4 {
			continue
		}
		colour := game.White
		if y >= b.Height()/2 {
			colour = game.Black
		}
		start := 0
		if y == 1 || y == 5 || y == 7 {
			start = 1
		}
		for x := start; x <= b.LastColumn(); x += 2 {
			b.Set(x, y, checkers.NewPiece(checkers.Man, colour))
		}
	}
	c.Turns().Reset()
}

// CanPickupPiece reports whether from holds a piece that may be lifted.
func (c *Checkers) CanPickupPiece(from geom.Point) bool {
	if !c.IsValid(from) || c.Get(from).Empty() {
		return false
	}
	if c.strictTurns && !c.Get(from).BelongsTo(c.CurrentPlayer().Colour) {
		return false
	}
	if c.chain != nil && *c.chain != from {
		return false
	}
	return true
}

// AllowedMoves returns the moves for piece standing on from. When any piece
// of the same colour can capture, only captures are returned. During a
// multi-jump only the jumping piece has moves and they are all jumps.
// The from cell is treated as holding piece even if it has been lifted.
func (c *Checkers) AllowedMoves(piece checkers.Piece, from geom.Point) game.MoveSet[checkers.Move] {
	moves := game.NewMoveSet[checkers.Move]()
	if piece.Empty() || !c.IsValid(from) {
		return moves
	}
	if c.chain != nil && *c.chain != from {
		return moves
	}

	v := view{c: c, at: from, piece: piece}
	if jumps := v.jumps(piece, from); len(jumps) > 0 {
		return game.NewMoveSet(jumps...)
	}
	if c.chain != nil || v.colourCanJump(piece.Colour) {
		return moves
	}

	for _, d := range directions(piece) {
		to := from.Add(d)
		if c.IsValid(to) && v.get(to).Empty() {
			moves.Add(checkers.NewStep(from, to))
		}
	}
	return moves
}

// PieceMoved applies move if it is allowed. A jump removes the captured
// piece; a man reaching the far row is crowned, which ends the turn. A jump
// that can be followed by another sets Continues.
func (c *Checkers) PieceMoved(piece checkers.Piece, move checkers.Move) game.MoveResult {
	if !c.IsValid(move.From) || !c.IsValid(move.To) {
		return game.Rejected()
	}
	if !c.AllowedMoves(piece, move.From).Contains(move) {
		return game.Rejected()
	}

	result := game.Accepted()
	c.Clear(move.From)
	if move.Kind == checkers.Jump {
		c.Clear(move.Captured())
		result.Captured = append(result.Captured, move.Captured())
	}

	crowned := false
	if piece.Kind == checkers.Man && move.To.Y == c.farRow(piece.Colour) {
		piece = piece.Crowned()
		crowned = true
	}
	c.Set(move.To, piece)

	c.chain = nil
	if move.Kind == checkers.Jump && !crowned {
		v := view{c: c, at: move.To, piece: piece}
		if len(v.jumps(piece, move.To)) > 0 {
			to := move.To
			c.chain = &to
			result.Continues = true
		}
	}
	return result
}

// AllowedMoveSetForPlayer returns the move sets of every piece of player
// that has at least one move.
func (c *Checkers) AllowedMoveSetForPlayer(player game.Player) game.PlayerMoveSet[checkers.Move] {
	return c.MoveSetForPlayer(player, c.AllowedMoves)
}

// NextTurn ends any pending multi-jump and passes the turn.
func (c *Checkers) NextTurn() {
	c.chain = nil
	c.Base.NextTurn()
}

// Jumping returns the square of the piece that must keep jumping, if any.
func (c *Checkers) Jumping() (geom.Point, bool) {
	if c.chain == nil {
		return geom.Point{}, false
	}
	return *c.chain, true
}

// Clone returns an independent copy of the game.
func (c *Checkers) Clone() *Checkers {
	clone := &Checkers{Base: c.CloneBase(), strictTurns: c.strictTurns}
	if c.chain != nil {
		p := *c.chain
		clone.chain = &p
	}
	return clone
}

func (c *Checkers) farRow(colour game.Colour) int {
	if colour == game.White {
		return c.Board().LastRow()
	}
	return c.Board().FirstRow()
}

// directions returns the diagonal offsets a piece may travel: forward only
// for men, all four for kings.
func directions(p checkers.Piece) []geom.Point {
	if p.Kind == checkers.King {
		return diagonalDirs
	}
	f := p.Colour.Forward()
	return []geom.Point{{X: -1, Y: f}, {X: 1, Y: f}}
}

// view reads the board as if the cell at holds piece.
type view struct {
	c     *Checkers
	at    geom.Point
	piece checkers.Piece
}

func (v view) get(p geom.Point) checkers.Piece {
	if p == v.at {
		return v.piece
	}
	return v.c.Get(p)
}

// jumps lists the captures available to piece standing on from.
func (v view) jumps(piece checkers.Piece, from geom.Point) []checkers.Move {
	var out []checkers.Move
	for _, d := range directions(piece) {
		over := from.Add(d)
		to := over.Add(d)
		if !v.c.IsValid(to) {
			continue
		}
		mid := v.get(over)
		if mid.Empty() || mid.Colour == piece.Colour {
			continue
		}
		if v.get(to).Empty() {
			out = append(out, checkers.NewJump(from, to))
		}
	}
	return out
}

// colourCanJump reports whether any piece of colour other than the one on
// v.at has a capture.
func (v view) colourCanJump(colour game.Colour) bool {
	found := false
	v.c.Board().Each(func(p geom.Point, piece checkers.Piece) {
		if found || p == v.at || !piece.BelongsTo(colour) {
			return
		}
		found = len(v.jumps(piece, p)) > 0
	})
	return found
}
