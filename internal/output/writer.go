package output

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	// WritePosition writes a position report.
	WritePosition(r PositionReport) error

	// WritePerft writes a perft report.
	WritePerft(r PerftReport) error

	// Flush writes any buffered reports to the underlying writer.
	Flush() error
}

// NewReportWriter returns the writer selected by the configuration.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.NoColour)
}

// TextWriter writes human-readable reports. Counts are grouped with
// thousands separators.
type TextWriter struct {
	w       io.Writer
	p       *message.Printer
	diagram *Diagram
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, noColour bool) *TextWriter {
	return &TextWriter{
		w:       w,
		p:       message.NewPrinter(language.English),
		diagram: NewDiagram(noColour),
	}
}

// WritePosition writes the diagram, status line and optional move list.
func (tw *TextWriter) WritePosition(r PositionReport) error {
	if r.showBoard {
		if _, err := io.WriteString(tw.w, tw.diagram.Render(r.board)); err != nil {
			return err
		}
	}
	status := r.Status
	if r.InsufficientMaterial {
		status += ", insufficient material"
	}
	if _, err := fmt.Fprintf(tw.w, "FEN: %s\nStatus: %s\n", r.FEN, status); err != nil {
		return err
	}
	if r.Moves == nil {
		return nil
	}

	lw := newLineWriter(tw.w, maxLineLength)
	lw.Write(tw.p.Sprintf("Legal moves (%d):", len(r.Moves)))
	for _, m := range r.Moves {
		lw.Write(m)
	}
	lw.NewLine()
	return lw.Err()
}

// WritePerft writes a perft summary, the divide breakdown and any
// cross-check result.
func (tw *TextWriter) WritePerft(r PerftReport) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = tw.p.Fprintf(tw.w, format, args...)
		}
	}

	for _, line := range r.Divide {
		printf("%-8s %-6s %d\n", line.Move, line.UCI, line.Nodes)
	}
	if len(r.Divide) > 0 {
		printf("\n")
	}

	printf("perft(%d) = %d nodes", r.Depth, r.Nodes)
	if rate := r.Rate(); rate > 0 {
		printf(" (%d n/s, %.3fs)", rate, r.Elapsed().Seconds())
	}
	printf("\n")

	if s := r.Stats; s != nil {
		printf("captures=%d enpassant=%d castles=%d promotions=%d checks=%d checkmates=%d\n",
			s.Captures, s.EnPassant, s.Castles, s.Promotions, s.Checks, s.Checkmates)
	}

	if r.Verified {
		if len(r.Mismatches) == 0 && r.Reference == r.Nodes {
			printf("reference agrees: %d nodes\n", r.Reference)
		} else {
			printf("reference DISAGREES: %d nodes\n", r.Reference)
			for _, m := range r.Mismatches {
				printf("  %-6s ours=%d reference=%d\n", m.Move, m.Ours, m.Reference)
			}
		}
	}
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// JSONWriter buffers reports and writes them as one JSON document on Flush.
type JSONWriter struct {
	w         io.Writer
	positions []PositionReport
	perfts    []PerftReport
}

// jsonOutput is the document written by JSONWriter.
type jsonOutput struct {
	Positions []PositionReport `json:"positions,omitempty"`
	Perft     []PerftReport    `json:"perft,omitempty"`
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePosition buffers a position report.
func (jw *JSONWriter) WritePosition(r PositionReport) error {
	jw.positions = append(jw.positions, r)
	return nil
}

// WritePerft buffers a perft report.
func (jw *JSONWriter) WritePerft(r PerftReport) error {
	jw.perfts = append(jw.perfts, r)
	return nil
}

// Flush writes all buffered reports and clears the buffer.
func (jw *JSONWriter) Flush() error {
	if len(jw.positions) == 0 && len(jw.perfts) == 0 {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jsonOutput{Positions: jw.positions, Perft: jw.perfts})

	jw.positions = jw.positions[:0]
	jw.perfts = jw.perfts[:0]
	return err
}
