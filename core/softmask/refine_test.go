package softmask

import (
	"bytes"
	"testing"

	"maskprep-core/fasta"
	"maskprep-core/genes"
)

func refine(name, seq string, ivs []genes.Interval, opt Options) (string, Stats) {
	rec := &fasta.Record{Name: name, Seq: []byte(seq)}
	st := Refine(rec, ivs, opt)
	return string(rec.Seq), st
}

func gene(name string, start, end int) genes.Interval {
	return genes.Interval{SeqName: name, Start: start, End: end}
}

func TestRefineScenarios(t *testing.T) {
	cases := []struct {
		name string
		seq  string
		ivs  []genes.Interval
		opt  Options
		want string
	}{
		{"gene then long run kept then hardmask", "acgtACGTacgt", []genes.Interval{gene("s", 1, 4)}, Options{MinRunLength: 3, Hardmask: true}, "ACGTACGTNNNN"},
		{"both runs shorter than threshold", "acgtACGTacgt", nil, Options{MinRunLength: 5}, "ACGTACGTACGT"},
		{"run equal to threshold is kept", "acgtACGTacgt", nil, Options{MinRunLength: 4}, "acgtACGTacgt"},
		{"threshold one unmasks everything", "acgtNNnnacgt", nil, Options{MinRunLength: 1, Hardmask: true}, "ACGTNNNNACGT"},
		{"threshold zero skips short runs", "aCgTa", nil, Options{MinRunLength: 0}, "aCgTa"},
		{"threshold zero then hardmask", "aCgTa", nil, Options{MinRunLength: 0, Hardmask: true}, "NCNTN"},
		{"non-letters bound runs", "ac-gt*a", nil, Options{MinRunLength: 3}, "AC-GT*A"},
		{"gene past the end is clipped", "aaaa", []genes.Interval{gene("s", 3, 100)}, Options{}, "aaAA"},
		{"gene entirely past the end", "aaaa", []genes.Interval{gene("s", 10, 20)}, Options{}, "aaaa"},
		{"gene on another sequence ignored", "aaaa", []genes.Interval{gene("other", 1, 4)}, Options{}, "aaaa"},
		{"gene splits a long run", "aaaaaaaaaa", []genes.Interval{gene("s", 4, 5)}, Options{MinRunLength: 4, Hardmask: true}, "AAAAANNNNN"},
		{"empty sequence", "", []genes.Interval{gene("s", 1, 5)}, Options{MinRunLength: 1, Hardmask: true}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, st := refine("s", c.seq, c.ivs, c.opt)
			if got != c.want {
				t.Fatalf("got %q want %q", got, c.want)
			}
			if st.Length != len(c.seq) || len(got) != len(c.seq) {
				t.Fatalf("length changed: %d -> %d", len(c.seq), len(got))
			}
		})
	}
}

func TestRefineStats(t *testing.T) {
	_, st := refine("s", "acgtACGTacgtaa", []genes.Interval{gene("s", 1, 2)}, Options{MinRunLength: 3, Hardmask: true})
	want := Stats{Length: 14, MaskedBefore: 10, GeneUnmasked: 2, ShortRunUnmasked: 2, Hardmasked: 6, MaskedAfter: 0}
	if st != want {
		t.Fatalf("stats:\n got %+v\nwant %+v", st, want)
	}
	var sum Stats
	sum.Add(st)
	sum.Add(st)
	if sum.Hardmasked != 12 || sum.Length != 28 {
		t.Fatalf("Add: %+v", sum)
	}
}

func TestMandatedOrder(t *testing.T) {
	const in = "acGT"
	got, _ := refine("s", in, nil, Options{MinRunLength: 5, Hardmask: true})
	if got != "ACGT" {
		t.Fatalf("short runs must be unmasked before hardmasking: got %q", got)
	}

	wrong := []byte(in)
	Hardmask(wrong)
	UnmaskShortRuns(wrong, 5)
	if string(wrong) == got {
		t.Fatalf("reversed order should differ for %q", in)
	}
}

func TestGeneUnmaskBeforeShortRuns(t *testing.T) {
	// The gene leaves a 2-base run that the short-run stage then unmasks.
	got, _ := refine("s", "aaaaaa", []genes.Interval{gene("s", 1, 4)}, Options{MinRunLength: 3, Hardmask: true})
	if got != "AAAAAA" {
		t.Fatalf("got %q", got)
	}
}

func TestIdempotence(t *testing.T) {
	seqs := []string{"", "acgt", "ACGTacgtNNnn--xx", "aAaAaaaAAAaaaa"}
	ivs := []genes.Interval{gene("s", 2, 3), gene("s", 3, 9), gene("s", 20, 30)}
	for _, s := range seqs {
		once := []byte(s)
		Hardmask(once)
		twice := append([]byte(nil), once...)
		if n := Hardmask(twice); n != 0 || !bytes.Equal(once, twice) {
			t.Errorf("hardmask not idempotent on %q", s)
		}

		once = []byte(s)
		UnmaskGenes(once, ivs)
		twice = append([]byte(nil), once...)
		if n := UnmaskGenes(twice, ivs); n != 0 || !bytes.Equal(once, twice) {
			t.Errorf("gene unmask not idempotent on %q", s)
		}

		for _, m := range []int{0, 1, 3, 500} {
			once = []byte(s)
			UnmaskShortRuns(once, m)
			twice = append([]byte(nil), once...)
			if n := UnmaskShortRuns(twice, m); n != 0 || !bytes.Equal(once, twice) {
				t.Errorf("short-run unmask (min %d) not idempotent on %q", m, s)
			}
		}
	}
}

func TestMinRunLengthOneLeavesNoLowercase(t *testing.T) {
	for _, hard := range []bool{false, true} {
		for _, ivs := range [][]genes.Interval{nil, {gene("s", 1, 3)}} {
			got, st := refine("s", "acgtnnACGTaaaaaaaaaa-x", ivs, Options{MinRunLength: 1, Hardmask: hard})
			if CountMasked([]byte(got)) != 0 || st.MaskedAfter != 0 || st.Hardmasked != 0 {
				t.Fatalf("hardmask=%v ivs=%v left lowercase: %q", hard, ivs, got)
			}
		}
	}
}

func TestMinRunLengthZeroIsNoOp(t *testing.T) {
	seq := []byte("a-aa-aaa-aaaa")
	if n := UnmaskShortRuns(seq, 0); n != 0 || string(seq) != "a-aa-aaa-aaaa" {
		t.Fatalf("min 0 changed sequence: %q", seq)
	}
}

func TestOverlapInvariance(t *testing.T) {
	const in = "aaaaaaaaaa"
	opt := Options{MinRunLength: 2, Hardmask: true}
	split, _ := refine("s", in, []genes.Interval{gene("s", 1, 4), gene("s", 3, 6)}, opt)
	merged, _ := refine("s", in, []genes.Interval{gene("s", 1, 6)}, opt)
	if split != merged {
		t.Fatalf("overlapping intervals %q != merged %q", split, merged)
	}
	if merged != "AAAAAANNNN" {
		t.Fatalf("merged: %q", merged)
	}
}

func TestUnmaskShortRunsBoundaries(t *testing.T) {
	cases := []struct {
		in   string
		min  int
		want string
		n    int
	}{
		{"a", 2, "A", 1},
		{"aa", 2, "aa", 0},
		{"aXaa", 2, "AXaa", 1},
		{"aaXa", 2, "aaXA", 1},
		{"aaaa", 5, "AAAA", 4},
		{"NNNN", 5, "NNNN", 0},
	}
	for _, c := range cases {
		b := []byte(c.in)
		if n := UnmaskShortRuns(b, c.min); string(b) != c.want || n != c.n {
			t.Errorf("UnmaskShortRuns(%q,%d) = %q (%d), want %q (%d)", c.in, c.min, b, n, c.want, c.n)
		}
	}
}
