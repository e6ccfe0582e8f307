package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "bool", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--", "pos2"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestSplitValueFlagAfterPositional(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var s string
	var q bool
	fs.StringVar(&s, "gff", "", "")
	fs.BoolVar(&q, "quiet", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"g.fa", "--gff", "a.gff3", "--quiet", "-"})
	if len(flagArgs) != 3 || flagArgs[1] != "a.gff3" {
		t.Fatalf("flags: %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "g.fa" || posArgs[1] != "-" {
		t.Fatalf("positionals: %v", posArgs)
	}
}

func TestOnePath(t *testing.T) {
	cases := []struct {
		name    string
		flagVal string
		pos     []string
		want    string
		wantErr bool
	}{
		{"flag only", "g.fa", nil, "g.fa", false},
		{"positional only", "", []string{"g.fa"}, "g.fa", false},
		{"stdin", "", []string{"-"}, "-", false},
		{"neither", "", nil, "", false},
		{"both", "a.fa", []string{"b.fa"}, "", true},
		{"two positionals", "", []string{"a.fa", "b.fa"}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := OnePath(tc.flagVal, tc.pos, "genome")
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
