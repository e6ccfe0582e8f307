package replib

import (
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// DefaultPrefix is the species prefix used in library record names.
const DefaultPrefix = "Zm"

// lineClasses maps RepeatModeler classifications to the RepeatMasker
// ontology label written for them. Order matters: the first match wins.
var lineClasses = []struct{ match, label string }{
	{match: "#LINE/L1", label: "LINE/L1"},
	{match: "#LINE/RTE-BovB", label: "LINE/RTE"},
}

// classify returns the output label for a consensus ID, or "" to drop it.
// The ID ends at the first space or tab, so a class in the description is
// ignored.
func classify(id string) string {
	for _, c := range lineClasses {
		if strings.Contains(id, c.match) {
			return c.label
		}
	}
	return ""
}

// ExtractLINEs copies the L1 and RTE-BovB consensi from a classified
// RepeatModeler library on r to w, renaming each to
// <prefix>_LINE_<n>#<label> with one counter per label. Other records are
// dropped. It returns the number of records written per label.
func ExtractLINEs(r io.Reader, w io.Writer, prefix string, width int) (map[string]int, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNAredundant)))
	out := fasta.NewWriter(w, width)
	counts := make(map[string]int)
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return counts, fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}
		label := classify(s.Name())
		if label == "" {
			continue
		}
		counts[label]++
		id := fmt.Sprintf("%s_LINE_%d#%s", prefix, counts[label], label)
		if _, err := out.Write(linear.NewSeq(id, s.Seq, alphabet.DNAredundant)); err != nil {
			return counts, fmt.Errorf("write %s: %w", id, err)
		}
	}
	if err := sc.Error(); err != nil {
		return counts, fmt.Errorf("read library: %w", err)
	}
	return counts, nil
}
