package dimacs

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeReceiver struct {
	nVars   int
	clauses [][]int
}

func (f *fakeReceiver) NumVars() int { return f.nVars }
func (f *fakeReceiver) AddVars(n int) {
	f.nVars += n
}
func (f *fakeReceiver) AddClauseInts(lits []int) error {
	f.clauses = append(f.clauses, append([]int{}, lits...))
	return nil
}

func TestParseBasicInstance(t *testing.T) {
	input := "c a comment\np cnf 2 3\n1 -2 0\n-1 2 0\n1 0\n"
	recv := &fakeReceiver{}
	if err := Parse(strings.NewReader(input), recv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recv.nVars != 2 {
		t.Fatalf("nVars = %d, want 2", recv.nVars)
	}
	if len(recv.clauses) != 3 {
		t.Fatalf("got %d clauses, want 3", len(recv.clauses))
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	input := "p cnf 1 1\n\n1 0\n\n"
	recv := &fakeReceiver{}
	if err := Parse(strings.NewReader(input), recv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recv.clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(recv.clauses))
	}
}

func TestParseMissingHeaderIsError(t *testing.T) {
	input := "1 0\n"
	recv := &fakeReceiver{}
	err := Parse(strings.NewReader(input), recv)
	if err == nil {
		t.Fatal("expected error for clause before header")
	}
}

func TestParseNoHeaderAtAllIsError(t *testing.T) {
	input := "c just a comment\n"
	recv := &fakeReceiver{}
	err := Parse(strings.NewReader(input), recv)
	if err == nil {
		t.Fatal("expected error for missing header entirely")
	}
}

func TestParseDuplicateHeaderIsError(t *testing.T) {
	input := "p cnf 1 1\np cnf 1 1\n1 0\n"
	recv := &fakeReceiver{}
	err := Parse(strings.NewReader(input), recv)
	if err == nil {
		t.Fatal("expected error for duplicate header")
	}
}

func TestParseMalformedHeaderIsError(t *testing.T) {
	input := "p cnf 1\n1 0\n"
	recv := &fakeReceiver{}
	err := Parse(strings.NewReader(input), recv)
	if err == nil {
		t.Fatal("expected error for malformed header")
	}
}

func TestParseClauseNotTerminatedIsError(t *testing.T) {
	input := "p cnf 2 1\n1 2\n"
	recv := &fakeReceiver{}
	err := Parse(strings.NewReader(input), recv)
	if err == nil {
		t.Fatal("expected error for clause missing trailing 0")
	}
}

func TestParseVariableExceedsDeclaredCountIsError(t *testing.T) {
	input := "p cnf 1 1\n1 2 0\n"
	recv := &fakeReceiver{}
	err := Parse(strings.NewReader(input), recv)
	if err == nil {
		t.Fatal("expected error when a literal exceeds the declared variable count")
	}
}

func TestParseClauseCountMismatchIsError(t *testing.T) {
	input := "p cnf 2 2\n1 2 0\n"
	recv := &fakeReceiver{}
	err := Parse(strings.NewReader(input), recv)
	if err == nil {
		t.Fatal("expected error when fewer clauses are parsed than declared")
	}
}

func TestOpenTransparentlyDecompressesGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.cnf.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("p cnf 1 1\n1 0\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	recv := &fakeReceiver{}
	if err := Parse(rc, recv); err != nil {
		t.Fatalf("Parse of decompressed stream: %v", err)
	}
	if len(recv.clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(recv.clauses))
	}
}
