// Package output renders game state for the text front end: board
// diagrams, legal-move listings and perft results, as text or JSON.
package output

import (
	"bufio"
	"io"
)

// DefaultLineLength is the wrap column used when none is configured.
const DefaultLineLength = 80

// WriteMoves writes move texts separated by single spaces, starting a new
// line before any move that would run past width, and ends with a newline.
// A move longer than width still gets a line to itself.
func WriteMoves(w io.Writer, moves []string, width int) error {
	if width <= 0 {
		width = DefaultLineLength
	}

	bw := bufio.NewWriter(w)
	col := 0
	for _, m := range moves {
		if m == "" {
			continue
		}
		switch {
		case col == 0:
		case col+1+len(m) > width:
			bw.WriteByte('\n')
			col = 0
		default:
			bw.WriteByte(' ')
			col++
		}
		bw.WriteString(m)
		col += len(m)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
