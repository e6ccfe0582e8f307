package trfcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"maskprep-core/replib"
	"maskprep/internal/clibase"
	"maskprep/internal/cliutil"
)

// Options holds trflib flags. Common.Input is the TRF .dat file.
type Options struct {
	clibase.Common

	Species string
	MinLen  int
	Width   int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "tandem repeat library builder for TRF output", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] genome.fa.2.7.7.80.10.50.500.dat > trf.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -t, --trf file              TRF .dat output ('-' for STDIN) [*]")

		_, _ = fmt.Fprintln(out, "\nLibrary:")
		_, _ = fmt.Fprintf(out, "  -s, --species string        Species prefix for record names [%s]\n", def("species"))
		_, _ = fmt.Fprintf(out, "      --min-length int        Shortest consensus pattern kept (bp) [%s]\n", def("min-length"))
		_, _ = fmt.Fprintf(out, "      --width int             FASTA line width [%s]\n", def("width"))
	})
	return fs
}

func Examples(out io.Writer, name string) {
	clibase.PrintExamples(out, name,
		"trf genome.fa 2 7 7 80 10 50 500 -d -h",
		name+" --species Zm genome.fa.2.7.7.80.10.50.500.dat > trf_lib.fa",
	)
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "trf", "TRF .dat file ('-' = stdin) [*]")
	fs.StringVar(&o.Input, "t", "", "alias of --trf")
	fs.StringVar(&o.Species, "species", replib.DefaultPrefix, "species prefix for record names")
	fs.StringVar(&o.Species, "s", replib.DefaultPrefix, "alias of --species")
	fs.IntVar(&o.MinLen, "min-length", replib.DefaultMinTRFLen, "shortest consensus pattern kept")
	fs.IntVar(&o.Width, "width", 60, "FASTA line width [60]")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if o.Version {
		return o, nil
	}
	if err := clibase.AfterParse(&o.Common, "trf", posArgs); err != nil {
		return o, err
	}
	switch {
	case o.Input == "":
		return o, errors.New("a TRF .dat file is required (--trf or positional)")
	case o.Species == "":
		return o, errors.New("--species must not be empty")
	case o.MinLen < 1:
		return o, errors.New("--min-length must be >= 1")
	case o.Width < 1:
		return o, errors.New("--width must be >= 1")
	}
	return o, nil
}
