package linesapp

import (
	"context"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"maskprep-core/input"
	"maskprep-core/replib"
	"maskprep/internal/appshell"
	"maskprep/internal/cmdutil"
	"maskprep/internal/linescli"
	"maskprep/internal/writers"
)

const name = "rmlines"

func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := linescli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := linescli.ParseArgs(fs, argv)
	if code, done := cmdutil.EarlyExit(name, fs, err, opts.Version, linescli.Examples, stdout, stderr); done {
		return code
	}
	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	rc, err := input.Open(opts.Input)
	if err != nil {
		log.Errorf("opening library: %v", err)
		return appshell.ExitUsage
	}
	defer rc.Close()

	out, err := writers.Create(opts.Out, stdout)
	if err != nil {
		log.Errorf("creating output: %v", err)
		return appshell.ExitRuntime
	}
	counts, err := replib.ExtractLINEs(rc, out, opts.Prefix, opts.Width)
	closeErr := out.Close()
	switch {
	case writers.IsBrokenPipe(err):
		return appshell.ExitOK
	case err != nil:
		log.Errorf("%s: %v", opts.Input, err)
		return appshell.ExitRuntime
	case closeErr != nil:
		log.Errorf("closing output: %v", closeErr)
		return appshell.ExitRuntime
	}

	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		log.WithFields(logrus.Fields{"class": l, "records": counts[l]}).Info("extracted")
	}
	if len(counts) == 0 {
		cmdutil.Warnf(log, opts.Quiet, "no LINE/L1 or LINE/RTE-BovB consensi in %s", opts.Input)
	}
	return appshell.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
