package genes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"maskprep-core/input"
)

// GeneFeature is the feature-type label retained from the interval source.
const GeneFeature = "gene"

// ErrMalformed marks an interval row that cannot be used.
var ErrMalformed = errors.New("malformed interval row")

// GFF column positions used by Load.
const (
	colSeqName = 0
	colType    = 2
	colStart   = 3
	colEnd     = 4
	minFields  = 5
)

// Load reads tab-separated GFF-style rows from r. Comment lines ('#') and
// blank lines are skipped; every other row needs at least five fields. Only
// rows whose type column is "gene" are kept. Any malformed row aborts the load.
// An embedded ##FASTA section ends the annotation.
func Load(r io.Reader) (*Index, error) {
	x := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for ln := 1; sc.Scan(); ln++ {
		line := sc.Text()
		if strings.HasPrefix(line, "##FASTA") {
			break
		}
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(strings.TrimSpace(line), "\t")
		if len(f) < minFields {
			return nil, fmt.Errorf("line %d: %w: want at least %d tab-separated fields, got %d", ln, ErrMalformed, minFields, len(f))
		}
		if f[colType] != GeneFeature {
			continue
		}
		start, err := strconv.Atoi(f[colStart])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad start %q", ln, ErrMalformed, f[colStart])
		}
		end, err := strconv.Atoi(f[colEnd])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad end %q", ln, ErrMalformed, f[colEnd])
		}
		iv := Interval{SeqName: f[colSeqName], Start: start, End: end}
		if err := validate(iv); err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		if err := x.insert(iv, true); err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gff scan: %w", err)
	}
	x.adjust()
	return x, nil
}

// LoadPath opens path (gzip-aware, "-" for stdin) and loads it. An empty path
// yields an empty index.
func LoadPath(path string) (*Index, error) {
	if path == "" {
		return New(), nil
	}
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	x, err := Load(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, nil
}
