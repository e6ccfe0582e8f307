package trfapp

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"maskprep-core/input"
	"maskprep-core/replib"
	"maskprep/internal/appshell"
	"maskprep/internal/cmdutil"
	"maskprep/internal/trfcli"
	"maskprep/internal/writers"
)

const name = "trflib"

func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := trfcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := trfcli.ParseArgs(fs, argv)
	if code, done := cmdutil.EarlyExit(name, fs, err, opts.Version, trfcli.Examples, stdout, stderr); done {
		return code
	}
	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	rc, err := input.Open(opts.Input)
	if err != nil {
		log.Errorf("opening TRF output: %v", err)
		return appshell.ExitUsage
	}
	defer rc.Close()

	patterns, err := replib.ParseTRF(rc, opts.MinLen)
	if err != nil {
		log.Errorf("%s: %v", opts.Input, err)
		return appshell.ExitUsage
	}
	log.WithFields(logrus.Fields{"patterns": len(patterns), "min_length": opts.MinLen}).Info("parsed TRF output")
	if len(patterns) == 0 {
		cmdutil.Warnf(log, opts.Quiet, "no tandem repeats of at least %d bp in %s", opts.MinLen, opts.Input)
	}

	out, err := writers.Create(opts.Out, stdout)
	if err != nil {
		log.Errorf("creating output: %v", err)
		return appshell.ExitRuntime
	}
	err = replib.WriteTRFLibrary(out, patterns, opts.Species, opts.Width)
	closeErr := out.Close()
	switch {
	case writers.IsBrokenPipe(err):
		return appshell.ExitOK
	case err != nil:
		log.Error(err)
		return appshell.ExitRuntime
	case closeErr != nil:
		log.Errorf("closing output: %v", closeErr)
		return appshell.ExitRuntime
	}
	return appshell.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
