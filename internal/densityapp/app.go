package densityapp

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"maskprep-core/density"
	"maskprep-core/fasta"
	"maskprep/internal/appshell"
	"maskprep/internal/cmdutil"
	"maskprep/internal/densitycli"
	"maskprep/internal/writers"
)

const name = "tedensity"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := densitycli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := densitycli.ParseArgs(fs, argv)
	if code, done := cmdutil.EarlyExit(name, fs, err, opts.Version, densitycli.Examples, stdout, stderr); done {
		return code
	}
	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	feats, err := density.ReadGFFPath(opts.GFF)
	if err != nil {
		log.Errorf("loading features: %v", err)
		return appshell.ExitUsage
	}
	log.WithFields(logrus.Fields{"features": feats.Len(), "types": len(feats.Types())}).Info("feature index ready")

	seqs, err := fasta.Lengths(parent, opts.Input)
	switch {
	case errors.Is(err, context.Canceled):
		return appshell.ExitCanceled
	case err != nil:
		log.Errorf("reading genome: %v", err)
		return appshell.ExitUsage
	}
	if len(seqs) == 0 {
		cmdutil.Warnf(log, opts.Quiet, "no sequences in %s", opts.Input)
	}

	rows := density.Table(seqs, feats, opts.Window, opts.Step)

	out, err := writers.Create(opts.Out, stdout)
	if err != nil {
		log.Errorf("creating output: %v", err)
		return appshell.ExitRuntime
	}
	err = density.WriteTable(out, rows)
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

	for _, s := range density.Summarize(rows) {
		log.WithFields(logrus.Fields{
			"type":    s.Type,
			"windows": s.Windows,
			"mean":    s.Mean,
			"stddev":  s.StdDev,
		}).Info("coverage")
	}
	return appshell.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
