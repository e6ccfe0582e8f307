// Package genes indexes gene-feature intervals by sequence name. Coordinates
// are 1-based and closed, as in GFF.
package genes

import (
	"fmt"
	"sort"

	"github.com/biogo/store/interval"
)

// Interval is a gene feature on one sequence: [Start, End], 1-based closed.
type Interval struct {
	SeqName string
	Start   int
	End     int
}

// Len is the number of bases the interval covers.
func (iv Interval) Len() int { return iv.End - iv.Start + 1 }

// entry adapts an Interval to the tree, which works in 0-based half-open space.
type entry struct {
	Interval
	id uintptr
}

func (e entry) Overlap(b interval.IntRange) bool { return e.End > b.Start && e.Start-1 < b.End }
func (e entry) ID() uintptr                      { return e.id }
func (e entry) Range() interval.IntRange {
	return interval.IntRange{Start: e.Start - 1, End: e.End}
}

// query is a 0-based half-open probe range.
type query struct{ start, end int }

func (q query) Overlap(b interval.IntRange) bool { return q.end > b.Start && q.start < b.End }
func (q query) ID() uintptr                      { return 0 }
func (q query) Range() interval.IntRange         { return interval.IntRange{Start: q.start, End: q.end} }

// Index maps sequence names to their gene intervals. It is built once and is
// read-only afterwards. A nil *Index is a valid, empty index.
type Index struct {
	trees map[string]*interval.IntTree
	n     int
}

// New returns an empty index.
func New() *Index {
	return &Index{trees: make(map[string]*interval.IntTree)}
}

// Add validates iv and inserts it. Duplicates and overlaps are kept as given.
func (x *Index) Add(iv Interval) error {
	if err := validate(iv); err != nil {
		return err
	}
	if err := x.insert(iv, false); err != nil {
		return err
	}
	return nil
}

func validate(iv Interval) error {
	if iv.Start < 1 {
		return fmt.Errorf("%w: start %d < 1", ErrMalformed, iv.Start)
	}
	if iv.End < iv.Start {
		return fmt.Errorf("%w: end %d < start %d", ErrMalformed, iv.End, iv.Start)
	}
	return nil
}

// insert with fast=true defers range maintenance; call adjust before querying.
func (x *Index) insert(iv Interval, fast bool) error {
	t, ok := x.trees[iv.SeqName]
	if !ok {
		t = &interval.IntTree{}
		x.trees[iv.SeqName] = t
	}
	if err := t.Insert(entry{Interval: iv, id: uintptr(t.Len())}, fast); err != nil {
		return fmt.Errorf("index %s:%d-%d: %w", iv.SeqName, iv.Start, iv.End, err)
	}
	x.n++
	return nil
}

func (x *Index) adjust() {
	for _, t := range x.trees {
		t.AdjustRanges()
	}
}

// Lookup returns every interval on name in ascending start order, or nil.
func (x *Index) Lookup(name string) []Interval {
	if x == nil {
		return nil
	}
	t, ok := x.trees[name]
	if !ok {
		return nil
	}
	out := make([]Interval, 0, t.Len())
	t.Do(func(e interval.IntInterface) (done bool) {
		out = append(out, e.(entry).Interval)
		return false
	})
	return out
}

// Overlapping returns the intervals on name that overlap [start, end]
// (1-based closed).
func (x *Index) Overlapping(name string, start, end int) []Interval {
	if x == nil || end < start {
		return nil
	}
	t, ok := x.trees[name]
	if !ok {
		return nil
	}
	hits := t.Get(query{start: start - 1, end: end})
	out := make([]Interval, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(entry).Interval)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// Names returns the indexed sequence names, sorted.
func (x *Index) Names() []string {
	if x == nil {
		return nil
	}
	names := make([]string, 0, len(x.trees))
	for n := range x.trees {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len is the total number of intervals.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return x.n
}
