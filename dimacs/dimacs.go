// Package dimacs implements a streaming reader for the DIMACS CNF input
// format. It is deliberately outside the solver's core: parsing (and
// decompression of compressed input) is an external collaborator that
// talks to the core only through ClauseReceiver. A header is required
// before any clause line, and the declared variable/clause counts are
// checked against what was actually parsed once the stream ends.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ClauseReceiver is anything that can accept a declared variable count and
// a stream of clauses. *solver.Solver satisfies this directly, so the
// parser never needs to know about internal literal encodings.
type ClauseReceiver interface {
	NumVars() int
	AddVars(n int)
	AddClauseInts(lits []int) error
}

// ParseError reports a malformed DIMACS file, with the offending line
// number for diagnostics.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: %s (line %d)", e.Msg, e.Line)
}

// Open opens filename for reading, transparently decompressing a ".gz"
// suffix via the standard library's compress/gzip. ".xz" is not
// supported: no pure-Go xz reader is available, and shelling out to an
// external xz binary (as the original implementation does) is avoided
// here deliberately.
func Open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &gzipReadCloser{gz: gz, f: f}, nil
	}
	return f, nil
}

type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	fErr := g.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}

// Parse reads a DIMACS CNF stream from r, declaring variables and adding
// clauses to recv as they're encountered. Comment lines (starting with
// 'c') are skipped. The "p cnf <nvars> <nclauses>" header must appear
// before any clause line; the parsed variable and clause counts are
// checked against the header's declared counts once the stream ends.
func Parse(r io.Reader, recv ClauseReceiver) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	headerSeen := false
	declaredVars, declaredClauses := 0, 0
	parsedClauses := 0
	maxVarSeen := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p cnf") {
			if headerSeen {
				return &ParseError{Line: lineNo, Msg: "duplicate header"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return &ParseError{Line: lineNo, Msg: "malformed header, expected 'p cnf <vars> <clauses>'"}
			}
			var err error
			declaredVars, err = strconv.Atoi(fields[2])
			if err != nil {
				return &ParseError{Line: lineNo, Msg: "could not parse variable count"}
			}
			declaredClauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return &ParseError{Line: lineNo, Msg: "could not parse clause count"}
			}
			headerSeen = true
			recv.AddVars(declaredVars)
			continue
		}
		if !headerSeen {
			return &ParseError{Line: lineNo, Msg: "clause before 'p cnf' header"}
		}

		lits, err := parseClauseLine(line, lineNo)
		if err != nil {
			return err
		}
		for _, v := range lits {
			abs := v
			if abs < 0 {
				abs = -abs
			}
			if abs > maxVarSeen {
				maxVarSeen = abs
			}
		}
		parsedClauses++
		if err := recv.AddClauseInts(lits); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if !headerSeen {
		return &ParseError{Line: lineNo, Msg: "missing 'p cnf' header"}
	}
	if maxVarSeen > declaredVars {
		return &ParseError{Line: lineNo, Msg: fmt.Sprintf("variable %d exceeds declared count %d", maxVarSeen, declaredVars)}
	}
	if parsedClauses != declaredClauses {
		return &ParseError{Line: lineNo, Msg: fmt.Sprintf("expected %d clauses, parsed %d", declaredClauses, parsedClauses)}
	}
	return nil
}

func parseClauseLine(line string, lineNo int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	if fields[len(fields)-1] != "0" {
		return nil, &ParseError{Line: lineNo, Msg: "clause not terminated with 0"}
	}
	lits := make([]int, 0, len(fields)-1)
	for _, f := range fields[:len(fields)-1] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: "could not parse literal " + f}
		}
		if v == 0 {
			return nil, &ParseError{Line: lineNo, Msg: "unexpected 0 within clause"}
		}
		lits = append(lits, v)
	}
	return lits, nil
}
