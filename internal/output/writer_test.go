package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/boardgame-go/internal/engine"
	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
	"github.com/lgbarn/boardgame-go/internal/testutil"
)

func chessGlyph(c *engine.Chess) Glyph {
	return func(p geom.Point) byte { return c.Get(p).Letter() }
}

func startReport() *Report {
	c := engine.NewChess()
	r := NewReport("chess", c.CurrentPlayer().Colour, c.BoardSize(), chessGlyph(c))
	r.FEN = c.FEN()
	r.SetMoves(MovesFromSet(c.AllowedMoveSetForPlayer(c.CurrentPlayer())))
	return r
}

func TestRows(t *testing.T) {
	c := engine.NewChess()
	rows := Rows(c.BoardSize(), chessGlyph(c))

	testutil.AssertEqual(t, rows, []string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	})
}

func TestWriteBoard(t *testing.T) {
	size := geom.Size{W: 2, H: 2}
	glyph := func(p geom.Point) byte {
		if p == geom.Pt(0, 0) {
			return 'K'
		}
		return '.'
	}

	tests := []struct {
		name string
		opts BoardOptions
		want string
	}{
		{"plain", BoardOptions{}, "..\nK.\n"},
		{"coords", BoardOptions{Coords: true}, " 2 . . \n 1 K . \n   a b \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			testutil.AssertNoError(t, WriteBoard(&buf, size, glyph, tt.opts))
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestWriteBoardANSI(t *testing.T) {
	opts := DefaultBoardOptions()
	opts.ANSI = true

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoard(&buf, geom.Size{W: 2, H: 1}, func(geom.Point) byte { return 'x' }, opts))

	out := buf.String()
	testutil.AssertContains(t, out, ansiBackground(opts.Dark)+" x ", "a1 is dark")
	testutil.AssertContains(t, out, ansiBackground(opts.Light)+" x ", "b1 is light")
	testutil.AssertTrue(t, strings.HasSuffix(out, ansiReset+"\n"))
}

func TestMovesFromSet(t *testing.T) {
	c := engine.NewChess()
	moves := MovesFromSet(c.AllowedMoveSetForPlayer(game.Player{Colour: game.White}))

	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertEqual(t, moves[0], JSONMove{From: "b1", To: "a3", Text: "b1a3"})
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, BoardOptions{}, 40)

	testutil.AssertNoError(t, w.WriteReport(startReport()))
	testutil.AssertNoError(t, w.Close())

	out := buf.String()
	testutil.AssertTrue(t, strings.HasPrefix(out, "chess, White to move\nrnbqkbnr\n"))
	testutil.AssertContains(t, out, "FEN: "+engine.InitialFEN)
	testutil.AssertContains(t, out, "20 legal moves")
	testutil.AssertContains(t, out, "e2e4")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "e2e3") {
			testutil.AssertTrue(t, len(line) <= 40, "move line %q too long", line)
		}
	}
}

func TestTextWriterPerft(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, BoardOptions{}, 80)

	r := startReport()
	r.PerftDepth = 1
	r.PerftNodes = 20
	r.Divide = []JSONDivide{{Move: "a2a3", Nodes: 1}}
	testutil.AssertNoError(t, w.WriteReport(r))

	out := buf.String()
	testutil.AssertContains(t, out, "a2a3: 1\n")
	testutil.AssertContains(t, out, "perft(1) = 20\n")
	testutil.AssertFalse(t, strings.Contains(out, "legal moves"))
}

func TestJSONWriterBatches(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	testutil.AssertNoError(t, w.WriteReport(startReport()))
	testutil.AssertNoError(t, w.WriteReport(startReport()))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Close")
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Reports), 2)
	testutil.AssertEqual(t, out.Reports[0].MoveCount, 20)
	testutil.AssertEqual(t, out.Reports[0].Board[7], "RNBQKBNR")
}

func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)

	testutil.AssertNoError(t, w.WriteReport(startReport()))
	testutil.AssertContains(t, buf.String(), `"toMove": "White"`)
	testutil.AssertContains(t, buf.String(), `"from": "e2"`)

	before := buf.Len()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), before, "Close writes nothing in single mode")
}

func TestReportWriterInterface(t *testing.T) {
	var _ ReportWriter = NewTextWriter(nil, BoardOptions{}, 0)
	var _ ReportWriter = NewJSONWriter(nil)
}

func TestWriteMoves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		moves []string
		width int
		want  string
	}{
		{"wraps at width", []string{"aaaa", "bbbb", "cccc"}, 10, "aaaa bbbb\ncccc\n"},
		{"fits exactly", []string{"e2e4", "d2d4"}, 9, "e2e4 d2d4\n"},
		{"long move on its own line", []string{"a", "bbbbbbbbbbbb", "c"}, 5, "a\nbbbbbbbbbbbb\nc\n"},
		{"default width", []string{"e2e4", "e7e5"}, 0, "e2e4 e7e5\n"},
		{"skips empty text", []string{"e2e4", "", "e7e5"}, 80, "e2e4 e7e5\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			testutil.AssertNoError(t, WriteMoves(&buf, tt.moves, tt.width))
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}
