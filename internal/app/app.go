// internal/app/app.go
package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"maskprep-core/genes"
	"maskprep-core/input"
	"maskprep-core/softmask"
	"maskprep/internal/appshell"
	"maskprep/internal/cli"
	"maskprep/internal/cmdutil"
	"maskprep/internal/output"
	"maskprep/internal/progress"
	"maskprep/internal/writers"
)

const name = "maskprep"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if code, done := cmdutil.EarlyExit(name, fs, err, opts.Version, cli.Examples, stdout, stderr); done {
		return code
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	start := time.Now()

	// Genes are indexed before anything is written so that a malformed
	// annotation never leaves partial output behind.
	idx, err := genes.LoadPath(opts.GeneFile)
	if err != nil {
		log.Errorf("loading genes: %v", err)
		return appshell.ExitUsage
	}
	log.WithFields(logrus.Fields{"genes": idx.Len(), "sequences": len(idx.Names())}).Info("gene index ready")

	rc, err := input.Open(opts.Input)
	if err != nil {
		log.Errorf("opening genome: %v", err)
		return appshell.ExitUsage
	}
	defer rc.Close()

	out, err := writers.Create(opts.Out, stdout)
	if err != nil {
		log.Errorf("creating output: %v", err)
		return appshell.ExitRuntime
	}

	var bar *progress.Bar
	if opts.Progress && !opts.Quiet {
		bar = progress.New(parent, stderr, "genome", input.Size(opts.Input))
	}

	var summary *output.Summary
	if opts.JSONPath != "" {
		summary = output.NewSummary(opts.Input, opts.GeneFile, idx.Len(), opts.Refine())
	}
	seen := make(map[string]bool)
	visit := func(res softmask.Result) {
		seen[res.Record.Name] = true
		if summary != nil {
			summary.Add(res.Record.Name, res.Stats)
		}
		log.WithFields(logrus.Fields{
			"record":      res.Record.Name,
			"length":      res.Stats.Length,
			"genes":       res.Stats.Genes,
			"masked":      res.Stats.MaskedAfter,
			"gene_bases":  res.Stats.GeneUnmasked,
			"short_bases": res.Stats.ShortRunUnmasked,
		}).Info("refined")
	}

	tot, runErr := cmdutil.RunStream(parent, bar.Reader(rc), idx, opts.Refine(),
		softmask.NewWriter(out, opts.Width), visit)
	bar.Done()
	closeErr := out.Close()

	switch {
	case runErr == nil:
	case writers.IsBrokenPipe(runErr):
		return appshell.ExitOK
	case errors.Is(runErr, context.Canceled) || parent.Err() != nil:
		log.Warn("interrupted")
		return appshell.ExitCanceled
	default:
		log.Errorf("%s: %v", opts.Input, runErr)
		return appshell.ExitRuntime
	}
	if closeErr != nil {
		log.Errorf("closing output: %v", closeErr)
		return appshell.ExitRuntime
	}

	for _, n := range unmatched(idx, seen) {
		cmdutil.Warnf(log, opts.Quiet, "gene sequence %q not found among FASTA headers", n)
	}

	if summary != nil {
		summary.Finish(tot)
		if err := summary.WriteFile(opts.JSONPath); err != nil {
			log.Errorf("writing summary: %v", err)
			return appshell.ExitRuntime
		}
	}
	if !opts.Quiet {
		output.PrintTotals(stderr, tot, time.Since(start))
	}
	return appshell.ExitOK
}

// unmatched lists indexed sequence names that never appeared as a record.
func unmatched(idx *genes.Index, seen map[string]bool) []string {
	var out []string
	for _, n := range idx.Names() {
		if !seen[n] {
			out = append(out, n)
		}
	}
	return out
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
