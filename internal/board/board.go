// Package board provides a generic fixed-size grid of cells stored in
// row-major order. It is pure storage: coordinates passed to the accessors are
// not bounds checked, callers validate them with Contains first.
package board

import (
	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

// Board is a width×height grid of T. The zero value of T is the empty cell.
type Board[T any] struct {
	width  int
	height int
	cells  []T
}

// New creates a board of the given dimensions with every cell set to the
// zero value of T.
func New[T any](width, height int) (*Board[T], error) {
	if width <= 0 || height <= 0 || width > geom.MaxCoord || height > geom.MaxCoord {
		return nil, errors.Wrapf(errors.ErrInvalidDimensions, "%dx%d", width, height)
	}
	size := geom.Size{W: width, H: height}
	return &Board[T]{
		width:  width,
		height: height,
		cells:  make([]T, size.Area()),
	}, nil
}

// MustNew is like New but panics on invalid dimensions. It is intended for
// rule sets whose dimensions are constants.
func MustNew[T any](width, height int) *Board[T] {
	b, err := New[T](width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// Index returns the storage index of (x, y).
func (b *Board[T]) Index(x, y int) int {
	return x + y*b.width
}

// Get returns the cell at (x, y).
func (b *Board[T]) Get(x, y int) T {
	return b.cells[b.Index(x, y)]
}

// At returns a pointer to the cell at (x, y) for in-place updates.
func (b *Board[T]) At(x, y int) *T {
	return &b.cells[b.Index(x, y)]
}

// Set stores v at (x, y).
func (b *Board[T]) Set(x, y int, v T) {
	b.cells[b.Index(x, y)] = v
}

func (b *Board[T]) Width() int  { return b.width }
func (b *Board[T]) Height() int { return b.height }

func (b *Board[T]) FirstRow() int    { return 0 }
func (b *Board[T]) LastRow() int     { return b.height - 1 }
func (b *Board[T]) FirstColumn() int { return 0 }
func (b *Board[T]) LastColumn() int  { return b.width - 1 }

// Size returns the board dimensions.
func (b *Board[T]) Size() geom.Size {
	return geom.Size{W: b.width, H: b.height}
}

// Contains reports whether p addresses a cell of the board.
func (b *Board[T]) Contains(p geom.Point) bool {
	return geom.Rect{Size: b.Size()}.Contains(p)
}

// Fill sets every cell to v.
func (b *Board[T]) Fill(v T) {
	for i := range b.cells {
		b.cells[i] = v
	}
}

// Each calls fn for every cell in storage order.
func (b *Board[T]) Each(fn func(p geom.Point, v T)) {
	for i, v := range b.cells {
		fn(geom.Pt(i%b.width, i/b.width), v)
	}
}

// Cells returns a copy of the cells in storage order.
func (b *Board[T]) Cells() []T {
	out := make([]T, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns an independent copy of the board.
func (b *Board[T]) Clone() *Board[T] {
	return &Board[T]{
		width:  b.width,
		height: b.height,
		cells:  b.Cells(),
	}
}
