// internal/output/summary.go
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"maskprep-core/softmask"
	"maskprep/internal/jsonutil"
	"maskprep/internal/version"
	"maskprep/pkg/api"
)

// Summary accumulates per-record stats for the --json report.
type Summary struct {
	api.RunSummaryV1
}

// NewSummary starts a report for one run.
func NewSummary(genome, geneFile string, geneCount int, opt softmask.Options) *Summary {
	return &Summary{api.RunSummaryV1{
		Version:      version.Version,
		Genome:       genome,
		GeneFile:     geneFile,
		GeneCount:    geneCount,
		MinRunLength: opt.MinRunLength,
		Hardmask:     opt.Hardmask,
		PerRecord:    []api.RecordStatsV1{},
	}}
}

// Add records one refined sequence.
func (s *Summary) Add(name string, st softmask.Stats) {
	s.PerRecord = append(s.PerRecord, ToAPIRecord(name, st))
}

// Finish stores the run totals.
func (s *Summary) Finish(tot softmask.Totals) {
	s.Records = tot.Records
	s.Totals = ToAPIRecord("", tot.Stats)
}

// WriteFile writes the summary as indented JSON to path.
func (s *Summary) WriteFile(path string) error {
	return jsonutil.WriteFile(path, s.RunSummaryV1)
}

// PrintTotals writes a one-line run summary. Colour is applied only when the
// process is attached to a terminal.
func PrintTotals(w io.Writer, tot softmask.Totals, elapsed time.Duration) {
	label := color.New(color.FgGreen, color.Bold)
	num := color.New(color.FgCyan)
	_, _ = label.Fprint(w, "maskprep: ")
	_, _ = fmt.Fprint(w, "refined ")
	_, _ = num.Fprintf(w, "%d", tot.Records)
	_, _ = fmt.Fprintf(w, " record(s), %d bp; masked %d -> %d (genes %d, short runs %d",
		tot.Length, tot.MaskedBefore, tot.MaskedAfter, tot.GeneUnmasked, tot.ShortRunUnmasked)
	if tot.Hardmasked > 0 {
		_, _ = fmt.Fprintf(w, ", hardmasked %d", tot.Hardmasked)
	}
	_, _ = fmt.Fprintf(w, ") in %s\n", elapsed.Round(time.Millisecond))
}
