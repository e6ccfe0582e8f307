package density

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"maskprep-core/fasta"
)

// Default window geometry.
const (
	DefaultWindow = 1000000
	DefaultStep   = 500000
)

// Window is a 0-based half-open stretch of one sequence.
type Window struct {
	Start, End int
}

// Windows tiles a sequence of length n with windows of size bases every step
// bases, starting at 0. The last window is truncated at n and tiling stops
// once a window reaches the sequence end.
func Windows(n, size, step int) []Window {
	if n <= 0 || size <= 0 || step <= 0 {
		return nil
	}
	var out []Window
	for start := 0; start < n; start += step {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, Window{Start: start, End: end})
		if end == n {
			break
		}
	}
	return out
}

// Row is the coverage of one feature type in one window.
type Row struct {
	SeqName  string
	Start    int
	End      int
	Fraction float64
	Type     string
}

// Table computes coverage rows for every feature type (sorted) over every
// sequence in seqs (input order).
func Table(seqs []fasta.SeqLen, fs *Features, size, step int) []Row {
	var rows []Row
	for _, typ := range fs.Types() {
		for _, s := range seqs {
			for _, w := range Windows(s.Len, size, step) {
				cov := fs.Covered(typ, s.Name, w.Start, w.End)
				rows = append(rows, Row{
					SeqName:  s.Name,
					Start:    w.Start,
					End:      w.End,
					Fraction: float64(cov) / float64(w.End-w.Start),
					Type:     typ,
				})
			}
		}
	}
	return rows
}

// WriteTable writes rows as "seq<TAB>start<TAB>fraction<TAB>type" lines.
func WriteTable(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%s\t%s\n",
			r.SeqName, r.Start, strconv.FormatFloat(r.Fraction, 'f', 7, 64), r.Type); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// TypeSummary is the distribution of window coverage for one feature type.
type TypeSummary struct {
	Type    string
	Windows int
	Mean    float64
	StdDev  float64
}

// Summarize returns per-type mean and standard deviation of window coverage,
// in type order.
func Summarize(rows []Row) []TypeSummary {
	var (
		out  []TypeSummary
		vals []float64
		cur  string
	)
	flush := func() {
		if len(vals) == 0 {
			return
		}
		s := TypeSummary{Type: cur, Windows: len(vals)}
		if len(vals) == 1 {
			s.Mean = vals[0]
		} else {
			s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
		}
		out = append(out, s)
		vals = vals[:0]
	}
	for _, r := range rows {
		if r.Type != cur {
			flush()
			cur = r.Type
		}
		vals = append(vals, r.Fraction)
	}
	flush()
	return out
}
