package progress

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestNilBarPassesThrough(t *testing.T) {
	b := New(context.Background(), io.Discard, "genome", 0)
	if b != nil {
		t.Fatal("unknown size should yield nil bar")
	}
	r := strings.NewReader("ACGT")
	if b.Reader(r) != r {
		t.Fatal("nil bar must return the reader unchanged")
	}
	b.Done()
}

func TestBarReaderCopiesAllBytes(t *testing.T) {
	data := strings.Repeat(">s\nACGTacgt\n", 100)
	var render bytes.Buffer
	b := New(context.Background(), &render, "genome", int64(len(data)))
	got, err := io.ReadAll(b.Reader(strings.NewReader(data)))
	b.Done()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != data {
		t.Fatal("data altered by progress reader")
	}
}
