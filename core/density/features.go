// Package density computes per-window coverage of annotated feature types,
// such as the TE superfamilies in an EDTA annotation, along a genome.
package density

import (
	"fmt"
	"io"
	"sort"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/store/interval"

	"maskprep-core/input"
)

// span is a 0-based half-open feature extent stored in a tree.
type span struct {
	start, end int
	id         uintptr
}

func (s span) Overlap(b interval.IntRange) bool { return s.end > b.Start && s.start < b.End }
func (s span) ID() uintptr                      { return s.id }
func (s span) Range() interval.IntRange         { return interval.IntRange{Start: s.start, End: s.end} }

// Features holds one interval tree per feature type and sequence.
type Features struct {
	trees map[string]map[string]*interval.IntTree
	n     int
}

// NewFeatures returns an empty feature set.
func NewFeatures() *Features {
	return &Features{trees: make(map[string]map[string]*interval.IntTree)}
}

// Add records a feature of type typ on seqName covering [start, end)
// (0-based half-open). Empty extents are ignored.
func (fs *Features) Add(typ, seqName string, start, end int) error {
	return fs.add(typ, seqName, start, end, false)
}

// add with fast=true defers range maintenance; call adjust before querying.
func (fs *Features) add(typ, seqName string, start, end int, fast bool) error {
	if end <= start {
		return nil
	}
	bySeq, ok := fs.trees[typ]
	if !ok {
		bySeq = make(map[string]*interval.IntTree)
		fs.trees[typ] = bySeq
	}
	t, ok := bySeq[seqName]
	if !ok {
		t = &interval.IntTree{}
		bySeq[seqName] = t
	}
	if err := t.Insert(span{start: start, end: end, id: uintptr(t.Len())}, fast); err != nil {
		return fmt.Errorf("%s %s:%d-%d: %w", typ, seqName, start, end, err)
	}
	fs.n++
	return nil
}

func (fs *Features) adjust() {
	for _, bySeq := range fs.trees {
		for _, t := range bySeq {
			t.AdjustRanges()
		}
	}
}

// Types returns the feature types present, sorted.
func (fs *Features) Types() []string {
	types := make([]string, 0, len(fs.trees))
	for typ := range fs.trees {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Len is the number of features held.
func (fs *Features) Len() int { return fs.n }

// Covered returns the number of bases in [start, end) covered by at least one
// feature of type typ on seqName.
func (fs *Features) Covered(typ, seqName string, start, end int) int {
	t, ok := fs.trees[typ][seqName]
	if !ok || end <= start {
		return 0
	}
	hits := t.Get(span{start: start, end: end})
	if len(hits) == 0 {
		return 0
	}
	spans := make([]span, 0, len(hits))
	for _, h := range hits {
		s := h.(span)
		if s.start < start {
			s.start = start
		}
		if s.end > end {
			s.end = end
		}
		spans = append(spans, s)
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	covered := 0
	curStart, curEnd := spans[0].start, spans[0].end
	for _, s := range spans[1:] {
		if s.start > curEnd {
			covered += curEnd - curStart
			curStart, curEnd = s.start, s.end
			continue
		}
		if s.end > curEnd {
			curEnd = s.end
		}
	}
	return covered + curEnd - curStart
}

// ReadGFF loads every feature of a GFF2 or GFF3 file, keyed by its type
// column.
func ReadGFF(r io.Reader) (*Features, error) {
	fs := NewFeatures()
	sc := featio.NewScanner(gff.NewReader(newGFF2Rows(r)))
	for sc.Next() {
		f, ok := sc.Feat().(*gff.Feature)
		if !ok {
			continue
		}
		if err := fs.add(f.Feature, f.SeqName, f.FeatStart, f.FeatEnd, true); err != nil {
			return nil, err
		}
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("gff read: %w", err)
	}
	fs.adjust()
	return fs, nil
}

// ReadGFFPath opens path (gzip-aware, "-" for stdin) and loads it.
func ReadGFFPath(path string) (*Features, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	fs, err := ReadGFF(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fs, nil
}
