package board

import (
	"testing"

	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/geom"
	"github.com/lgbarn/boardgame-go/internal/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"chess", 8, 8, false},
		{"rectangular", 10, 4, false},
		{"single cell", 1, 1, false},
		{"zero width", 0, 8, true},
		{"negative height", 8, -1, true},
		{"too wide", geom.MaxCoord + 1, 1, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := New[int](tt.w, tt.h)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidDimensions)
				return
			}
			testutil.AssertNoError(t, err)
			if got := len(b.Cells()); got != tt.w*tt.h {
				t.Errorf("len(Cells()) = %d, want %d", got, tt.w*tt.h)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0, 0) did not panic")
		}
	}()
	MustNew[int](0, 0)
}

func TestBounds(t *testing.T) {
	b := MustNew[int](10, 4)

	testutil.AssertEqual(t, b.Width(), 10)
	testutil.AssertEqual(t, b.Height(), 4)
	testutil.AssertEqual(t, b.FirstRow(), 0)
	testutil.AssertEqual(t, b.LastRow(), 3)
	testutil.AssertEqual(t, b.FirstColumn(), 0)
	testutil.AssertEqual(t, b.LastColumn(), 9)
	testutil.AssertEqual(t, b.Size(), geom.Size{W: 10, H: 4})

	testutil.AssertTrue(t, b.Contains(geom.Pt(9, 3)), "far corner")
	testutil.AssertFalse(t, b.Contains(geom.Pt(10, 0)), "past last column")
	testutil.AssertFalse(t, b.Contains(geom.Pt(0, 4)), "past last row")
	testutil.AssertFalse(t, b.Contains(geom.Pt(-1, 0)), "negative column")
}

func TestRowMajorStorage(t *testing.T) {
	b := MustNew[int](3, 2)
	b.Set(2, 0, 5)
	b.Set(0, 1, 7)
	*b.At(1, 1) = 9

	testutil.AssertEqual(t, b.Cells(), []int{0, 0, 5, 7, 9, 0})
	testutil.AssertEqual(t, b.Index(1, 1), 4)
	testutil.AssertEqual(t, b.Get(1, 1), 9)
}

func TestEachVisitsInStorageOrder(t *testing.T) {
	b := MustNew[int](2, 2)
	var got []geom.Point
	b.Each(func(p geom.Point, _ int) {
		got = append(got, p)
	})
	testutil.AssertEqual(t, got, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)})
}

func TestFillAndClone(t *testing.T) {
	b := MustNew[string](2, 2)
	b.Fill("x")
	c := b.Clone()
	c.Set(0, 0, "y")

	testutil.AssertEqual(t, b.Cells(), []string{"x", "x", "x", "x"})
	testutil.AssertEqual(t, c.Cells(), []string{"y", "x", "x", "x"})
}
