package softmask

import (
	"bufio"
	"io"
)

// Writer serializes refined records as FASTA: a '>' header line followed by
// the sequence. Width > 0 wraps the sequence at Width bases per line; 0
// writes it on a single line.
type Writer struct {
	w     *bufio.Writer
	Width int
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, width int) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 1<<16), Width: width}
}

// Write writes one record. Output is flushed per record so that consumers see
// each record as soon as it is complete.
func (w *Writer) Write(name string, seq []byte) error {
	if err := w.w.WriteByte('>'); err != nil {
		return err
	}
	if _, err := w.w.WriteString(name); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	if w.Width <= 0 || len(seq) == 0 {
		if _, err := w.w.Write(seq); err != nil {
			return err
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
		return w.w.Flush()
	}
	for off := 0; off < len(seq); off += w.Width {
		end := off + w.Width
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := w.w.Write(seq[off:end]); err != nil {
			return err
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.w.Flush()
}
