package density

import (
	"bufio"
	"bytes"
	"io"
)

// gff2Rows adapts GFF3 text for the version 2 reader. Directive lines are
// dropped, rows are cut to their first eight columns (attributes are not
// used), blank lines are skipped, and an embedded ##FASTA section ends the
// input.
type gff2Rows struct {
	br  *bufio.Reader
	buf []byte
	err error
}

func newGFF2Rows(r io.Reader) *gff2Rows {
	return &gff2Rows{br: bufio.NewReaderSize(r, 1<<16)}
}

var fastaDirective = []byte("##FASTA")

func (g *gff2Rows) Read(p []byte) (int, error) {
	for len(g.buf) == 0 {
		if g.err != nil {
			return 0, g.err
		}
		line, err := g.br.ReadBytes('\n')
		g.err = err
		switch {
		case bytes.HasPrefix(line, fastaDirective):
			g.err = io.EOF
			continue
		case bytes.HasPrefix(line, []byte("##")), len(bytes.TrimSpace(line)) == 0:
			continue
		case len(line) > 0 && line[0] != '#':
			line = cutColumns(line, 8)
		}
		g.buf = line
	}
	n := copy(p, g.buf)
	g.buf = g.buf[n:]
	return n, nil
}

// cutColumns keeps the first n tab-separated columns of line, newline
// terminated.
func cutColumns(line []byte, n int) []byte {
	tabs := 0
	for i, b := range line {
		if b != '\t' {
			continue
		}
		tabs++
		if tabs == n {
			return append(line[:i], '\n')
		}
	}
	return line
}
