// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"strings"

	"maskprep-core/input"
)

// Record is one FASTA entry: the trimmed header text after '>' and the
// concatenated sequence lines.
type Record struct {
	Name string
	Seq  []byte
}

// ID returns the first whitespace-delimited word of the header, the name most
// indexers (samtools faidx, GFF seqid columns) use for the record.
func (r *Record) ID() string {
	name := strings.TrimSpace(r.Name)
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		return name[:i]
	}
	return name
}

// StreamRecordsPathCtx opens path (gzip-aware, "-" for stdin) and streams its
// records through emit. Open errors are returned before any record is read.
func StreamRecordsPathCtx(ctx context.Context, path string, emit func(*Record) error) error {
	rc, err := input.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := StreamRecordsCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Lengths returns the sequence length of every record in path, in input
// order, keyed by record ID.
func Lengths(ctx context.Context, path string) ([]SeqLen, error) {
	var out []SeqLen
	err := StreamRecordsPathCtx(ctx, path, func(r *Record) error {
		out = append(out, SeqLen{Name: r.ID(), Len: len(r.Seq)})
		return nil
	})
	return out, err
}

// SeqLen is a record name paired with its sequence length.
type SeqLen struct {
	Name string
	Len  int
}
