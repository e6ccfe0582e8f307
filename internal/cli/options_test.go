// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"maskprep/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "--genome", "g.fa")
	if o.Input != "g.fa" || o.MinLength != 500 || o.Hardmask || o.Width != 0 || o.Out != "-" {
		t.Fatalf("bad defaults: %+v", o)
	}
	if r := o.Refine(); r.MinRunLength != 500 || r.Hardmask {
		t.Fatalf("bad refine options: %+v", r)
	}
}

func TestPositionalGenomeAfterFlags(t *testing.T) {
	o := mustParse(t, "--gff", "genes.gff3", "--hardmask", "-m", "100", "g.fa")
	if o.Input != "g.fa" || o.GeneFile != "genes.gff3" || !o.Hardmask || o.MinLength != 100 {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestPositionalGenomeBeforeFlags(t *testing.T) {
	o := mustParse(t, "g.fa", "--minlength", "0", "--width", "60")
	if o.Input != "g.fa" || o.MinLength != 0 || o.Width != 60 {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestStdinGenome(t *testing.T) {
	o := mustParse(t, "-")
	if o.Input != "-" {
		t.Fatalf("want stdin, got %q", o.Input)
	}
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"no genome":           {"--gff", "genes.gff3"},
		"negative minlength":  {"--minlength", "-1", "g.fa"},
		"negative width":      {"--width", "-5", "g.fa"},
		"two genomes":         {"a.fa", "b.fa"},
		"flag and positional": {"--genome", "a.fa", "b.fa"},
		"json to stdout":      {"--json", "-", "g.fa"},
		"out overwrites":      {"--out", "g.fa", "g.fa"},
		"double stdin":        {"--gff", "-", "-"},
		"not an int":          {"--minlength", "x", "g.fa"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseArgs(newFS(), args); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestRangeErrorText(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--minlength", "-1", "g.fa"})
	if err == nil || !strings.Contains(err.Error(), "--minlength must be >= 0") {
		t.Fatalf("got %v", err)
	}
}

func TestHelpVersionExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want examples sentinel, got %v", err)
	}
}
