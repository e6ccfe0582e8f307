package replib

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// DefaultMinTRFLen is the shortest consensus pattern kept from TRF output.
const DefaultMinTRFLen = 10

// ParseTRF reads a Tandem Repeats Finder .dat file and returns the distinct
// consensus patterns of at least minLen bases in first-seen order. Only repeat
// lines, those starting with a digit, are read; the pattern is the
// second-to-last field.
func ParseTRF(r io.Reader, minLen int) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	seen := make(map[string]struct{})
	var out []string
	for ln := 1; sc.Scan(); ln++ {
		line := sc.Text()
		if line == "" || line[0] < '0' || line[0] > '9' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, fmt.Errorf("line %d: repeat line has %d fields", ln, len(f))
		}
		pat := f[len(f)-2]
		if len(pat) < minLen {
			continue
		}
		if _, dup := seen[pat]; dup {
			continue
		}
		seen[pat] = struct{}{}
		out = append(out, pat)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("trf scan: %w", err)
	}
	return out, nil
}

// TRFName is the library record name for the i-th (1-based) tandem repeat.
func TRFName(species string, i int) string {
	return fmt.Sprintf("%s_trf_%d#Satellite/Satellite", species, i)
}

// WriteTRFLibrary writes patterns as a FASTA repeat library.
func WriteTRFLibrary(w io.Writer, patterns []string, species string, width int) error {
	if species == "" {
		species = DefaultPrefix
	}
	out := fasta.NewWriter(w, width)
	for i, p := range patterns {
		s := linear.NewSeq(TRFName(species, i+1), alphabet.BytesToLetters([]byte(p)), alphabet.DNAredundant)
		if _, err := out.Write(s); err != nil {
			return fmt.Errorf("write %s: %w", s.Name(), err)
		}
	}
	return nil
}
