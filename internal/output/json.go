package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
	"github.com/lgbarn/boardgame-go/internal/notation"
)

// Report is a snapshot of a game for output: the board, the side to move
// and either its legal moves or a perft result.
type Report struct {
	Variant    string       `json:"variant"`
	ToMove     string       `json:"toMove"`
	FEN        string       `json:"fen,omitempty"`
	Board      []string     `json:"board"`
	Moves      []JSONMove   `json:"moves,omitempty"`
	MoveCount  int          `json:"moveCount"`
	PerftDepth int          `json:"perftDepth,omitempty"`
	PerftNodes uint64       `json:"perftNodes,omitempty"`
	Divide     []JSONDivide `json:"divide,omitempty"`

	size  geom.Size
	glyph Glyph
}

// JSONMove represents a legal move in JSON format.
type JSONMove struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

// JSONDivide is the node count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*Report `json:"reports"`
}

// NewReport snapshots the board through glyph.
func NewReport(variant string, toMove game.Colour, size geom.Size, glyph Glyph) *Report {
	return &Report{
		Variant: variant,
		ToMove:  toMove.String(),
		Board:   Rows(size, glyph),
		size:    size,
		glyph:   glyph,
	}
}

// MovesFromSet flattens a player move set in origin order.
func MovesFromSet[M game.Move](set game.PlayerMoveSet[M]) []JSONMove {
	var out []JSONMove
	for _, from := range set.Origins() {
		for _, m := range set[from].Moves() {
			out = append(out, JSONMove{
				From: notation.SquareName(m.Origin()),
				To:   notation.SquareName(m.Destination()),
				Text: fmt.Sprint(m),
			})
		}
	}
	return out
}

// SetMoves records the legal moves of the side to move.
func (r *Report) SetMoves(moves []JSONMove) {
	r.Moves = moves
	r.MoveCount = len(moves)
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
