package softmask

import (
	"context"
	"io"

	"maskprep-core/fasta"
	"maskprep-core/genes"
)

// Result is one refined record. Record.Seq aliases the stream buffer and is
// only valid inside the emit callback.
type Result struct {
	Record *fasta.Record
	Stats  Stats
}

// Totals summarizes a Process run.
type Totals struct {
	Records int
	Stats
}

// Process streams FASTA from r, refines each record against the gene
// intervals indexed under its name, counts the genes that overlap it, and
// hands the result to emit before the next record is read. Results already
// emitted stay emitted if a later read or emit fails.
func Process(ctx context.Context, r io.Reader, idx *genes.Index, opt Options, emit func(Result) error) (Totals, error) {
	var tot Totals
	err := fasta.StreamRecordsCtx(ctx, r, func(rec *fasta.Record) error {
		st := Refine(rec, idx.Lookup(rec.Name), opt)
		st.Genes = len(idx.Overlapping(rec.Name, 1, len(rec.Seq)))
		if err := emit(Result{Record: rec, Stats: st}); err != nil {
			return err
		}
		tot.Records++
		tot.Add(st)
		return nil
	})
	return tot, err
}
