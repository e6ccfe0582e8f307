package input

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func gz(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestOpenPlainAndGzipMagic(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "a.fa")
	magic := filepath.Join(dir, "b.fa") // gzip without .gz suffix
	_ = os.WriteFile(plain, []byte(">a\nAC\n"), 0o644)
	_ = os.WriteFile(magic, gz(t, ">b\nGT\n"), 0o644)

	if got := readAll(t, plain); got != ">a\nAC\n" {
		t.Fatalf("plain: %q", got)
	}
	if got := readAll(t, magic); got != ">b\nGT\n" {
		t.Fatalf("gzip magic: %q", got)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.fa")
	_ = os.WriteFile(fn, nil, 0o644)
	if got := readAll(t, fn); got != "" {
		t.Fatalf("empty: %q", got)
	}
}

func TestOpenStdinGzip(t *testing.T) {
	r, w, _ := os.Pipe()
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()

	data := gz(t, ">chr1\nac\n")
	go func() { _, _ = w.Write(data); _ = w.Close() }()

	if got := readAll(t, Stdin); got != ">chr1\nac\n" {
		t.Fatalf("stdin gzip: %q", got)
	}
}

func TestSize(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "a.fa")
	packed := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(plain, []byte("12345"), 0o644)
	_ = os.WriteFile(packed, gz(t, "12345"), 0o644)

	if n := Size(plain); n != 5 {
		t.Fatalf("plain size: %d", n)
	}
	if n := Size(packed); n != -1 {
		t.Fatalf("gzip size should be unknown, got %d", n)
	}
	if n := Size(Stdin); n != -1 {
		t.Fatalf("stdin size should be unknown, got %d", n)
	}
	if n := Size(filepath.Join(dir, "missing")); n != -1 {
		t.Fatalf("missing size should be unknown, got %d", n)
	}
}
