package perft

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/boardgame-go/internal/engine"
	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/hashing"
	"github.com/lgbarn/boardgame-go/internal/testutil"
)

func TestCountStartPosition(t *testing.T) {
	tests := []struct {
		depth   int
		workers int
		want    uint64
	}{
		{0, 1, 1},
		{1, 1, 20},
		{2, 2, 400},
		{3, 4, 8902},
	}

	for _, tt := range tests {
		got, err := Count(engine.NewChess(), tt.depth, tt.workers)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, tt.want, "perft(%d)", tt.depth)
	}
}

func TestCountLeavesGameUntouched(t *testing.T) {
	g := engine.NewChess()
	before := g.FEN()

	_, err := Count(g, 2, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.FEN(), before)
}

func TestDivide(t *testing.T) {
	entries, err := Divide(engine.NewChess(), 2, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(entries), 20)

	for i, e := range entries {
		testutil.AssertEqual(t, e.Nodes, uint64(20), "after %s", e.Move)
		if i > 0 {
			testutil.AssertTrue(t, entries[i-1].Move.String() < e.Move.String(), "entries sorted")
		}
	}
	testutil.AssertEqual(t, entries[0].Move.String(), "a2a3")
}

func TestCountWithCache(t *testing.T) {
	tbl := hashing.NewThreadSafeTable(0)

	got, err := Count(engine.NewChess(), 3, 4, WithCache(tbl))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(8902))
	testutil.AssertEqual(t, tbl.Len(), 20, "one entry per position after the first move")
	testutil.AssertEqual(t, tbl.Hits(), 0)

	got, err = Count(engine.NewChess(), 3, 2, WithCache(tbl))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(8902))
	testutil.AssertEqual(t, tbl.Hits(), 20, "second run is served from the table")
}

func TestCountWithCacheMatchesUncached(t *testing.T) {
	g, err := engine.NewChessFromFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	want, err := Count(g, 3, 2)
	testutil.AssertNoError(t, err)
	got, err := Count(g, 3, 2, WithCache(hashing.NewThreadSafeTable(0)))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want)
}

func TestDivideRejectsDepth(t *testing.T) {
	_, err := Divide(engine.NewChess(), 0, 1)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

// oraclePerft counts legal move paths with the reference generator.
func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Positions where neither side can give check within the searched depth.
func TestCountMatchesReferenceGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{"initial", engine.InitialFEN, 3},
		{"castling", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", 2},
		{"open game", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := engine.NewChessFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			b := dragontoothmg.ParseFen(tt.fen)
			got, err := Count(g, tt.depth, 2)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, oraclePerft(&b, tt.depth))
		})
	}
}
