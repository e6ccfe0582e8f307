// Package progress renders byte-based progress bars for long file reads.
package progress

import (
	"context"
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar tracks bytes read from one input.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New starts a bar of total bytes rendered on dst. It returns nil when total
// is unknown (<= 0); a nil *Bar is valid and does nothing.
func New(ctx context.Context, dst io.Writer, label string, total int64) *Bar {
	if total <= 0 {
		return nil
	}
	p := mpb.NewWithContext(ctx, mpb.WithWidth(40), mpb.WithOutput(dst))
	bar := p.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(label+": ", decor.WC{W: len(label) + 2, C: decor.DindentRight}),
			decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.Name(" ETA: "),
			decor.EwmaETA(decor.ET_STYLE_GO, 30),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

// Reader wraps r so that reads advance the bar.
func (b *Bar) Reader(r io.Reader) io.Reader {
	if b == nil {
		return r
	}
	return b.bar.ProxyReader(r)
}

// Done completes the bar at its current position and waits for the final
// render.
func (b *Bar) Done() {
	if b == nil {
		return
	}
	b.bar.SetTotal(-1, true)
	b.p.Wait()
}
