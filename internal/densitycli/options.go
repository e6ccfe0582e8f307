package densitycli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"maskprep-core/density"
	"maskprep/internal/clibase"
	"maskprep/internal/cliutil"
)

// Options holds tedensity flags. Common.Input is the genome FASTA.
type Options struct {
	clibase.Common

	GFF    string
	Window int
	Step   int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "sliding-window transposable element density", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --gff genome.fa.mod.EDTA.TEanno.gff3 genome.fa > density.tsv\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -g, --genome file           Genome FASTA; supplies sequence lengths [*]")
		_, _ = fmt.Fprintln(out, "      --gff file              TE annotation GFF3 (e.g. EDTA) [*]")

		_, _ = fmt.Fprintln(out, "\nWindows:")
		_, _ = fmt.Fprintf(out, "      --window int            Window size (bp) [%s]\n", def("window"))
		_, _ = fmt.Fprintf(out, "      --step int              Window step (bp) [%s]\n", def("step"))

		_, _ = fmt.Fprintln(out, "\nOutput columns: sequence, window start (0-based), covered fraction, feature type")
	})
	return fs
}

func Examples(out io.Writer, name string) {
	clibase.PrintExamples(out, name,
		name+" --gff genome.fa.mod.EDTA.TEanno.gff3 genome.fa > te_density.tsv",
		name+" --window 100000 --step 50000 --gff te.gff3.gz genome.fa.gz",
	)
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "genome", "genome FASTA ('-' = stdin) [*]")
	fs.StringVar(&o.Input, "g", "", "alias of --genome")
	fs.StringVar(&o.GFF, "gff", "", "TE annotation GFF3 [*]")
	fs.IntVar(&o.Window, "window", density.DefaultWindow, "window size (bp)")
	fs.IntVar(&o.Step, "step", density.DefaultStep, "window step (bp)")
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
	if err := clibase.AfterParse(&o.Common, "genome", posArgs); err != nil {
		return o, err
	}
	switch {
	case o.Input == "":
		return o, errors.New("a genome FASTA is required (--genome or positional)")
	case o.GFF == "":
		return o, errors.New("--gff is required")
	case o.Input == "-" && o.GFF == "-":
		return o, errors.New("--gff and --genome cannot both read STDIN")
	case o.Window < 1:
		return o, errors.New("--window must be >= 1")
	case o.Step < 1:
		return o, errors.New("--step must be >= 1")
	}
	return o, nil
}
