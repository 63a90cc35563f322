// Package geom provides the small value types shared by boards, games and
// renderers: integer points, sizes, rectangles and colours.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaxCoord is the exclusive upper bound on a coordinate that Hash can pack
// without collisions.
const MaxCoord = 1 << 16

// Point is an integer (x, y) board or screen coordinate.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Hash packs y into the high 16 bits and x into the low 16 bits.
// It is injective only while both coordinates are in [0, MaxCoord).
func (p Point) Hash() uint32 {
	return uint32(p.Y)<<16 | uint32(p.X)&0xffff
}

// String returns "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int {
	return s.W * s.H
}

// Rect is an axis-aligned rectangle anchored at Origin.
type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether p lies inside r. The far edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.W &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.H
}

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
