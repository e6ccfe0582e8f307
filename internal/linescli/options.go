package linescli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"maskprep-core/replib"
	"maskprep/internal/clibase"
	"maskprep/internal/cliutil"
)

// Options holds rmlines flags. Common.Input is the classified library.
type Options struct {
	clibase.Common

	Prefix string
	Width  int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "LINE consensus extractor for RepeatModeler libraries", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] consensi.fa.classified > lines.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -l, --library file          Classified consensus FASTA ('-' for STDIN) [*]")

		_, _ = fmt.Fprintln(out, "\nNaming:")
		_, _ = fmt.Fprintf(out, "  -p, --prefix string         Species prefix for record names [%s]\n", def("prefix"))
		_, _ = fmt.Fprintf(out, "      --width int             FASTA line width [%s]\n", def("width"))
	})
	return fs
}

func Examples(out io.Writer, name string) {
	clibase.PrintExamples(out, name,
		name+" consensi.fa.classified > lines.fa",
		name+" --prefix Sb --out sorghum_lines.fa consensi.fa.classified",
	)
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "library", "classified consensus FASTA ('-' = stdin) [*]")
	fs.StringVar(&o.Input, "l", "", "alias of --library")
	fs.StringVar(&o.Prefix, "prefix", replib.DefaultPrefix, "species prefix for record names")
	fs.StringVar(&o.Prefix, "p", replib.DefaultPrefix, "alias of --prefix")
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
	if err := clibase.AfterParse(&o.Common, "library", posArgs); err != nil {
		return o, err
	}
	switch {
	case o.Input == "":
		return o, errors.New("a classified library is required (--library or positional)")
	case o.Prefix == "":
		return o, errors.New("--prefix must not be empty")
	case o.Width < 1:
		return o, errors.New("--width must be >= 1")
	}
	return o, nil
}
