// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

const readBufSize = 4 << 20 // 4 MiB

// StreamRecordsCtx parses FASTA from r and calls emit once per record, in
// input order. Only one record is buffered at a time: the Record passed to
// emit (including its Seq) is valid only for the duration of the call and is
// reused for the next record. Copy it if you need to keep it.
//
// A header line starts with '>'; the record name is the rest of the line,
// trimmed. Body lines are trimmed and concatenated. Body lines seen before the
// first header form a record with an empty name. A record whose sequence is
// empty is not emitted. Lines of any length are accepted.
//
// It is cancelable: ctx is checked between lines.
func StreamRecordsCtx(ctx context.Context, r io.Reader, emit func(*Record) error) error {
	br := bufio.NewReaderSize(r, readBufSize)

	var (
		rec  = Record{Seq: make([]byte, 0, 1<<20)}
		line []byte
	)

	flush := func() error {
		if len(rec.Seq) == 0 {
			return nil
		}
		if err := emit(&rec); err != nil {
			return err
		}
		rec.Seq = rec.Seq[:0]
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var err error
		line, err = readLine(br, line[:0])
		if err != nil && err != io.EOF {
			return fmt.Errorf("fasta read: %w", err)
		}
		if len(line) > 0 {
			if line[0] == '>' {
				if ferr := flush(); ferr != nil {
					return ferr
				}
				rec.Name = string(bytes.TrimSpace(line[1:]))
			} else {
				rec.Seq = append(rec.Seq, bytes.TrimSpace(line)...)
			}
		}
		if err == io.EOF {
			break
		}
	}
	return flush()
}

// readLine appends the next line (newline included) to dst. It returns io.EOF
// together with the final unterminated line, if any.
func readLine(br *bufio.Reader, dst []byte) ([]byte, error) {
	for {
		frag, err := br.ReadSlice('\n')
		dst = append(dst, frag...)
		if err != bufio.ErrBufferFull {
			return dst, err
		}
	}
}
