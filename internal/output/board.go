package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/boardgame-go/internal/geom"
	"github.com/lgbarn/boardgame-go/internal/notation"
)

// Glyph returns the character drawn for the cell at p.
type Glyph func(p geom.Point) byte

// BoardOptions controls the board diagram.
type BoardOptions struct {
	Coords bool // Rank numbers on the left, file letters below
	ANSI   bool // Shade squares with 24-bit background colours
	Light  geom.Color
	Dark   geom.Color
}

// DefaultBoardOptions returns plain diagram settings with the usual
// wood-brown palette for ANSI shading.
func DefaultBoardOptions() BoardOptions {
	return BoardOptions{
		Light: geom.RGB(240, 217, 181),
		Dark:  geom.RGB(181, 136, 99),
	}
}

const ansiReset = "\x1b[0m"

func ansiBackground(c geom.Color) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// WriteBoard draws the board with the last row at the top.
func WriteBoard(w io.Writer, size geom.Size, glyph Glyph, opts BoardOptions) error {
	bw := bufio.NewWriter(w)

	for y := size.H - 1; y >= 0; y-- {
		if opts.Coords {
			fmt.Fprintf(bw, "%2d ", y+1)
		}
		for x := 0; x < size.W; x++ {
			p := geom.Pt(x, y)
			switch {
			case opts.ANSI:
				shade := opts.Light
				if (x+y)%2 == 0 {
					shade = opts.Dark
				}
				fmt.Fprintf(bw, "%s %c ", ansiBackground(shade), glyph(p))
			case opts.Coords:
				fmt.Fprintf(bw, "%c ", glyph(p))
			default:
				bw.WriteByte(glyph(p))
			}
		}
		if opts.ANSI {
			bw.WriteString(ansiReset)
		}
		bw.WriteByte('\n')
	}

	if opts.Coords {
		bw.WriteString("   ")
		for x := 0; x < size.W; x++ {
			if opts.ANSI {
				fmt.Fprintf(bw, " %s ", notation.FileName(x))
			} else {
				fmt.Fprintf(bw, "%s ", notation.FileName(x))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Rows returns the diagram as plain strings, top row first.
func Rows(size geom.Size, glyph Glyph) []string {
	rows := make([]string, 0, size.H)
	for y := size.H - 1; y >= 0; y-- {
		row := make([]byte, size.W)
		for x := range row {
			row[x] = glyph(geom.Pt(x, y))
		}
		rows = append(rows, string(row))
	}
	return rows
}
