// Package notation converts between board coordinates and algebraic text.
// Files are letters starting at 'a' for column 0 and ranks are numbers
// starting at 1 for row 0, so (4,1) is "e2".
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/boardgame-go/internal/errors"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

// MaxFiles is the number of file letters available.
const MaxFiles = 26

// SquareName returns the algebraic name of p, or p.String() for
// coordinates that have no name.
func SquareName(p geom.Point) string {
	if p.X < 0 || p.X >= MaxFiles || p.Y < 0 {
		return p.String()
	}
	return fmt.Sprintf("%c%d", 'a'+p.X, p.Y+1)
}

// FileName returns the file letter for column x.
func FileName(x int) string {
	if x < 0 || x >= MaxFiles {
		return "?"
	}
	return string(rune('a' + x))
}

// ParseSquare reads a square name such as "e2".
func ParseSquare(s string) (geom.Point, error) {
	p, n, err := scanSquare(s, 0)
	if err != nil {
		return geom.Point{}, err
	}
	if n != len(s) {
		return geom.Point{}, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: s, Column: n + 1,
			Expected: "end of square", Got: fmt.Sprintf("%q", s[n:]),
		}
	}
	return p, nil
}

// ParseMove reads a move written as two squares, optionally separated by
// '-', 'x' or whitespace: "e2e4", "e2-e4", "d4xe5", "e2 e4".
func ParseMove(s string) (from, to geom.Point, err error) {
	text := strings.TrimSpace(s)
	from, n, err := scanSquare(text, 0)
	if err != nil {
		return from, to, err
	}

	i := n
	for i < len(text) && text[i] == ' ' {
		i++
	}
	if i < len(text) && (text[i] == '-' || text[i] == 'x') {
		i++
	}
	for i < len(text) && text[i] == ' ' {
		i++
	}

	to, n, err = scanSquare(text, i)
	if err != nil {
		return from, to, err
	}
	if n != len(text) {
		return from, to, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: text, Column: n + 1,
			Expected: "end of move", Got: fmt.Sprintf("%q", text[n:]),
		}
	}
	return from, to, nil
}

// MoveName returns the long algebraic form "e2e4".
func MoveName(from, to geom.Point) string {
	return SquareName(from) + SquareName(to)
}

// scanSquare reads a square starting at offset i and returns the offset
// just past it.
func scanSquare(s string, i int) (geom.Point, int, error) {
	if i >= len(s) {
		return geom.Point{}, i, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: s, Column: i + 1,
			Expected: "file letter", Got: "end of input",
		}
	}

	c := s[i]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c >= 'a'+MaxFiles {
		return geom.Point{}, i, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: s, Column: i + 1,
			Expected: "file letter", Got: fmt.Sprintf("%q", s[i]),
		}
	}
	x := int(c - 'a')

	j := i + 1
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i+1 {
		got := "end of input"
		if j < len(s) {
			got = fmt.Sprintf("%q", s[j])
		}
		return geom.Point{}, j, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: s, Column: j + 1,
			Expected: "rank number", Got: got,
		}
	}

	rank, err := strconv.Atoi(s[i+1 : j])
	if err != nil || rank < 1 || rank > geom.MaxCoord {
		return geom.Point{}, j, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: s, Column: i + 2,
			Expected: "rank number", Got: s[i+1 : j],
		}
	}
	return geom.Pt(x, rank-1), j, nil
}
