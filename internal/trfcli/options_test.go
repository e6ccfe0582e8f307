package trfcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestDefaults(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"g.dat"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Input != "g.dat" || o.Species != "Zm" || o.MinLen != 10 || o.Width != 60 {
		t.Fatalf("bad defaults: %+v", o)
	}
}

func TestFlags(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-s", "Os", "--min-length", "20", "-t", "g.dat"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Species != "Os" || o.MinLen != 20 || o.Input != "g.dat" {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"--species", "", "g.dat"},
		{"--min-length", "0", "g.dat"},
		{"--width", "0", "g.dat"},
		{"a.dat", "b.dat"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}
