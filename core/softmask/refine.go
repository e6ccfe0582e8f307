// Package softmask refines repeat-masked sequence ahead of gene annotation.
//
// Mask state lives in letter case: lowercase bases are masked, uppercase
// bases are not. Refinement runs three stages in a fixed order, each reading
// the case left by the one before:
//
//  1. gene unmask: bases inside gene intervals are uppercased;
//  2. short-run unmask: masked runs shorter than MinRunLength are uppercased;
//  3. hardmask (optional): remaining lowercase letters become 'N'.
//
// Stages only substitute bytes; a sequence never changes length.
package softmask

import (
	"maskprep-core/fasta"
	"maskprep-core/genes"
)

// HardmaskSymbol replaces masked bases when hardmasking.
const HardmaskSymbol = 'N'

// DefaultMinRunLength is the short-run threshold used when none is given.
const DefaultMinRunLength = 500

// Options controls refinement.
//
// MinRunLength selects the short-run policy:
//
//	> 1  masked runs shorter than MinRunLength are unmasked
//	== 1 every base is unmasked
//	0    short-run unmasking is skipped
type Options struct {
	MinRunLength int
	Hardmask     bool
}

// Stats counts what refinement did to one record.
type Stats struct {
	Length           int `json:"length"`
	Genes            int `json:"genes"`
	MaskedBefore     int `json:"masked_before"`
	GeneUnmasked     int `json:"gene_unmasked"`
	ShortRunUnmasked int `json:"short_run_unmasked"`
	Hardmasked       int `json:"hardmasked"`
	MaskedAfter      int `json:"masked_after"`
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Length += o.Length
	s.Genes += o.Genes
	s.MaskedBefore += o.MaskedBefore
	s.GeneUnmasked += o.GeneUnmasked
	s.ShortRunUnmasked += o.ShortRunUnmasked
	s.Hardmasked += o.Hardmasked
	s.MaskedAfter += o.MaskedAfter
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

// Refine applies all stages to rec.Seq in place. intervals are the gene
// intervals for rec; only those whose SeqName equals rec.Name are applied.
func Refine(rec *fasta.Record, intervals []genes.Interval, opt Options) Stats {
	seq := rec.Seq
	st := Stats{Length: len(seq), MaskedBefore: CountMasked(seq)}

	own := intervals[:0:0]
	for _, iv := range intervals {
		if iv.SeqName == rec.Name {
			own = append(own, iv)
		}
	}
	st.GeneUnmasked = UnmaskGenes(seq, own)
	st.ShortRunUnmasked = UnmaskShortRuns(seq, opt.MinRunLength)
	if opt.Hardmask {
		st.Hardmasked = Hardmask(seq)
	}
	st.MaskedAfter = CountMasked(seq)
	return st
}

// UnmaskGenes uppercases every interval of ivs in seq, whatever its SeqName,
// and returns the number of bases changed. Overlapping and duplicate intervals
// are fine: uppercasing is idempotent.
func UnmaskGenes(seq []byte, ivs []genes.Interval) int {
	n := 0
	for _, iv := range ivs {
		n += UnmaskRange(seq, iv.Start, iv.End)
	}
	return n
}

// UnmaskRange uppercases the 1-based closed range [start, end] of seq. The
// range is clipped to the sequence; a range entirely outside it is a no-op.
func UnmaskRange(seq []byte, start, end int) int {
	lo, hi := start-1, end
	if lo < 0 {
		lo = 0
	}
	if hi > len(seq) {
		hi = len(seq)
	}
	if lo >= hi {
		return 0
	}
	return upper(seq[lo:hi])
}

// UnmaskShortRuns applies the short-run policy for minRunLength (see Options)
// and returns the number of bases changed.
func UnmaskShortRuns(seq []byte, minRunLength int) int {
	switch {
	case minRunLength > 1:
		n := 0
		runStart := -1
		for i := 0; i <= len(seq); i++ {
			if i < len(seq) && isLower(seq[i]) {
				if runStart < 0 {
					runStart = i
				}
				continue
			}
			if runStart >= 0 {
				if i-runStart < minRunLength {
					n += upper(seq[runStart:i])
				}
				runStart = -1
			}
		}
		return n
	case minRunLength == 1:
		return upper(seq)
	default:
		return 0
	}
}

// Hardmask replaces every lowercase letter with HardmaskSymbol and returns the
// number of bases replaced.
func Hardmask(seq []byte) int {
	n := 0
	for i, b := range seq {
		if isLower(b) {
			seq[i] = HardmaskSymbol
			n++
		}
	}
	return n
}

// CountMasked returns the number of lowercase letters in seq.
func CountMasked(seq []byte) int {
	n := 0
	for _, b := range seq {
		if isLower(b) {
			n++
		}
	}
	return n
}

func upper(b []byte) int {
	n := 0
	for i, c := range b {
		if isLower(c) {
			b[i] = c - ('a' - 'A')
			n++
		}
	}
	return n
}
