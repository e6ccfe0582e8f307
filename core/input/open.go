// core/input/open.go
package input

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" reads stdin; gzip input is detected by
// magic number (1F 8B) or a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return openStream(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if isGzip(sig[:n]) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// openStream sniffs a non-seekable stream for gzip magic without consuming it.
func openStream(f *os.File) (io.ReadCloser, error) {
	br := bufio.NewReader(f)
	sig, _ := br.Peek(2)
	if isGzip(sig) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr}}, nil
	}
	return io.NopCloser(br), nil
}

func isGzip(sig []byte) bool {
	return len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
}

// Size reports the byte size of a regular, uncompressed file, or -1 when the
// size is unknown (stdin, gzip, or stat failure).
func Size(path string) int64 {
	if path == Stdin || strings.HasSuffix(path, ".gz") {
		return -1
	}
	fh, err := os.Open(path)
	if err != nil {
		return -1
	}
	defer fh.Close()
	fi, err := fh.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return -1
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if isGzip(sig[:n]) {
		return -1
	}
	return fi.Size()
}
