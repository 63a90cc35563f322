package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes reports as a board diagram followed by wrapped move
// text or perft lines.
type TextWriter struct {
	w          io.Writer
	opts       BoardOptions
	lineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts BoardOptions, lineLength int) *TextWriter {
	return &TextWriter{w: w, opts: opts, lineLength: lineLength}
}

// WriteReport writes r in text form.
func (tw *TextWriter) WriteReport(r *Report) error {
	fmt.Fprintf(tw.w, "%s, %s to move\n", r.Variant, r.ToMove)
	if r.glyph != nil {
		if err := WriteBoard(tw.w, r.size, r.glyph, tw.opts); err != nil {
			return err
		}
	}
	if r.FEN != "" {
		fmt.Fprintf(tw.w, "FEN: %s\n", r.FEN)
	}

	if r.PerftDepth > 0 {
		for _, d := range r.Divide {
			fmt.Fprintf(tw.w, "%s: %d\n", d.Move, d.Nodes)
		}
		_, err := fmt.Fprintf(tw.w, "perft(%d) = %d\n", r.PerftDepth, r.PerftNodes)
		return err
	}

	fmt.Fprintf(tw.w, "%d legal moves\n", r.MoveCount)
	if len(r.Moves) == 0 {
		return nil
	}
	texts := make([]string, len(r.Moves))
	for i, m := range r.Moves {
		texts[i] = m.Text
	}
	return WriteMoves(tw.w, texts, tw.lineLength)
}

// Flush is a no-op: text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports into one
// document on Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return WriteJSON(jw.w, r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
