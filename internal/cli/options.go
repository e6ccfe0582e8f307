// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"maskprep-core/softmask"
	"maskprep/internal/clibase"
	"maskprep/internal/cliutil"
)

// Options holds all maskprep flags and arguments.
type Options struct {
	clibase.Common // Input is the genome FASTA

	// Refinement
	GeneFile  string
	MinLength int
	Hardmask  bool

	// Output
	Width    int
	JSONPath string
	Progress bool
}

// Refine returns the refinement options selected on the command line.
func (o Options) Refine() softmask.Options {
	return softmask.Options{MinRunLength: o.MinLength, Hardmask: o.Hardmask}
}

// NewFlagSet returns a FlagSet with maskprep's help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "softmask refinement for gene annotation", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --gff genes.gff3 genome.softmasked.fa[.gz] > genome.refined.fa\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --genome - < genome.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -g, --genome file           Softmasked genome FASTA (or positional; '-' for STDIN) [*]")
		_, _ = fmt.Fprintln(out, "      --gff file              GFF3 whose 'gene' rows are unmasked [optional]")

		_, _ = fmt.Fprintln(out, "\nRefinement:")
		_, _ = fmt.Fprintf(out, "  -m, --minlength int         Unmask masked runs shorter than N bp (1=unmask all, 0=skip) [%s]\n", def("minlength"))
		_, _ = fmt.Fprintf(out, "      --hardmask              Replace remaining masked bases with N [%s]\n", def("hardmask"))

		_, _ = fmt.Fprintln(out, "\nReporting:")
		_, _ = fmt.Fprintf(out, "      --width int             Wrap sequence lines at N bases (0=single line) [%s]\n", def("width"))
		_, _ = fmt.Fprintln(out, "      --json file             Write a JSON run summary with per-record counts")
		_, _ = fmt.Fprintf(out, "      --progress              Show a progress bar on STDERR [%s]\n", def("progress"))
	})
	return fs
}

// Examples prints maskprep's quickstart.
func Examples(out io.Writer, name string) {
	clibase.PrintExamples(out, name,
		"# unmask genes and drop masked runs shorter than 500 bp",
		name+" --gff genes.gff3 genome.fa.masked > genome.refined.fa",
		"",
		"# hardmask what remains, wrapped at 60 bp, with a JSON report",
		name+" --gff genes.gff3 --hardmask --width 60 --json report.json --out genome.hard.fa genome.fa.masked",
		"",
		"# only merge short masked runs, reading gzip from STDIN",
		"zcat genome.fa.gz | "+name+" --minlength 1000 -",
	)
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "genome", "softmasked genome FASTA ('-' = stdin) [*]")
	fs.StringVar(&o.Input, "g", "", "alias of --genome")
	fs.StringVar(&o.GeneFile, "gff", "", "GFF3 gene annotation [optional]")
	fs.IntVar(&o.MinLength, "minlength", softmask.DefaultMinRunLength, "unmask masked runs shorter than N bp")
	fs.IntVar(&o.MinLength, "m", softmask.DefaultMinRunLength, "alias of --minlength")
	fs.BoolVar(&o.Hardmask, "hardmask", false, "replace remaining masked bases with N [false]")
	fs.IntVar(&o.Width, "width", 0, "wrap sequence lines at N bases (0 = single line) [0]")
	fs.StringVar(&o.JSONPath, "json", "", "write a JSON run summary to file")
	fs.BoolVar(&o.Progress, "progress", false, "show a progress bar on stderr [false]")
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
	return o, validate(o)
}

func validate(o Options) error {
	if o.Input == "" {
		return errors.New("a genome FASTA is required (--genome or positional)")
	}
	if o.MinLength < 0 {
		return errors.New("--minlength must be >= 0")
	}
	if o.Width < 0 {
		return errors.New("--width must be >= 0")
	}
	if o.JSONPath == "-" {
		return errors.New("--json needs a file path")
	}
	if o.Out != "-" && o.Out != "" && (o.Out == o.Input || o.Out == o.GeneFile) {
		return fmt.Errorf("--out %q would overwrite an input", o.Out)
	}
	if o.GeneFile == "-" && o.Input == "-" {
		return errors.New("--gff and --genome cannot both read STDIN")
	}
	return nil
}
