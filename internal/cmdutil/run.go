package cmdutil

import (
	"context"
	"io"

	"maskprep-core/genes"
	"maskprep-core/softmask"
)

// RunStream refines every FASTA record read from r, passes each result to
// visit, and writes it through w. It returns the run totals and the first
// error encountered; records already written stay written.
func RunStream(
	ctx context.Context,
	r io.Reader,
	idx *genes.Index,
	opt softmask.Options,
	w *softmask.Writer,
	visit func(softmask.Result),
) (softmask.Totals, error) {
	return softmask.Process(ctx, r, idx, opt, func(res softmask.Result) error {
		if visit != nil {
			visit(res)
		}
		return w.Write(res.Record.Name, res.Record.Seq)
	})
}
