package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// Stdout is the --out value that selects standard output.
const Stdout = "-"

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Create opens the destination named by path. An empty path or "-" returns
// stdout wrapped so that Close leaves it open.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == Stdout {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

// IsBrokenPipe reports whether err means the reader of our output went away,
// as when a FASTA stream is piped into `head`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
