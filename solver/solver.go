// Package solver implements the CDCL search engine: clause database,
// two-watched-literal BCP, 1-UIP conflict analysis with non-chronological
// backjumping, VSIDS decisions with phase saving, and Luby-sequence
// restarts. It is single-threaded and synchronous; the only concurrency
// surface is the context.Context accepted by Solve, checked between
// search iterations so a caller can bound runtime externally.
package solver

import (
	"sort"

	"github.com/nekosat/nekosat/config"
	"github.com/nekosat/nekosat/internal/heap"
	"github.com/nekosat/nekosat/internal/lit"
)

// AddClauseResult reports the outcome of AddClause.
type AddClauseResult int

const (
	// ClauseAdded means the clause (or its simplified form) was recorded
	// and the instance is not yet known to be unsatisfiable.
	ClauseAdded AddClauseResult = iota
	// ClauseUnsatDetected means adding this clause latched the solver
	// into a permanent UNSAT state (empty clause, or a root-level
	// conflict). Subsequent Solve calls return UNSAT without search.
	ClauseUnsatDetected
)

// Result is the outcome of Solve.
type Result struct {
	Satisfiable bool
	// Model holds a value per declared variable (index v = DIMACS var
	// v+1) when Satisfiable is true; nil otherwise.
	Model []bool
}

// Solver is a CDCL solver instance whose variables are declared through
// New and AddVars. All state is owned by the
// instance; there is no global or shared state.
type Solver struct {
	cfg config.Config

	clauses      *ClauseAllocator
	originalRefs []ClauseRef
	learnedRefs  []ClauseRef

	assigns []lit.LBool
	varData []VarData
	phase   []bool
	seen    []bool

	trail    []lit.Lit
	trailLim []int
	qhead    int

	watches watchList
	order   *heap.Heap

	varIncr float64
	claIncr float32

	unsat bool

	stats Statistics
}

// New returns an empty solver configured by cfg, for nVars variables.
// Variables are addressed 0..nVars-1 internally; AddClause and Result
// use the external DIMACS-style 1..nVars numbering with sign as polarity.
func New(cfg config.Config, nVars int) *Solver {
	s := &Solver{
		cfg:     cfg,
		clauses: NewClauseAllocator(),
		watches: newWatchList(),
		order:   heap.New(),
		varIncr: 1.0,
		claIncr: 1.0,
	}
	for i := 0; i < nVars; i++ {
		s.newVar()
	}
	return s
}

// NumVars returns the number of declared variables.
func (s *Solver) NumVars() int {
	return len(s.assigns)
}

// AddVars declares n additional variables, growing the solver's variable
// space. Satisfies dimacs.ClauseReceiver, letting the parser declare
// variables as soon as it reads the "p cnf" header.
func (s *Solver) AddVars(n int) {
	for i := 0; i < n; i++ {
		s.newVar()
	}
}

// AddClauseInts adds a clause given as signed DIMACS-style ints,
// satisfying dimacs.ClauseReceiver. AddClause's result is dropped: a
// detected root conflict is not an error but a legitimate UNSAT outcome
// the caller (the CLI driver) discovers via Solve, so parsing simply
// continues.
func (s *Solver) AddClauseInts(lits []int) error {
	_, err := s.AddClause(lits)
	return err
}

// Stats returns a snapshot of the solver's monotonic counters.
func (s *Solver) Stats() Statistics {
	return s.stats
}

func (s *Solver) newVar() lit.Var {
	v := lit.Var(len(s.assigns))
	s.assigns = append(s.assigns, lit.LUndef)
	s.varData = append(s.varData, VarData{Reason: ClauseRefUndef})
	s.phase = append(s.phase, false)
	s.seen = append(s.seen, false)
	s.watches.grow(2 * (int(v) + 1))
	s.order.Grow(int(v) + 1)
	s.order.Insert(v)
	return v
}

// toLits validates and converts DIMACS-style signed ints into internal
// literals. It never declares variables: a literal beyond the variables
// already declared via New or AddVars is reported as MalformedInputError
// rather than silently growing the solver.
func (s *Solver) toLits(ints []int) ([]lit.Lit, error) {
	lits := make([]lit.Lit, len(ints))
	for i, v := range ints {
		l := lit.FromInt(v)
		if int(l.Var()) >= s.NumVars() {
			return nil, &MalformedInputError{Literal: v, NumVars: s.NumVars()}
		}
		lits[i] = l
	}
	return lits, nil
}

// AddClause adds a clause given as nonzero DIMACS-style signed integers
// (sign denotes polarity, magnitude is the 1-based variable). Must be
// called at decision level 0. Duplicate literals are removed and
// tautological clauses (containing both polarities of some variable) are
// discarded; an empty resulting clause, or a unit clause contradicting a
// prior root-level fact, latches the solver into UNSAT.
func (s *Solver) AddClause(ints []int) (AddClauseResult, error) {
	lits, err := s.toLits(ints)
	if err != nil {
		return ClauseAdded, err
	}
	if !s.addClauseLits(lits) {
		return ClauseUnsatDetected, nil
	}
	return ClauseAdded, nil
}

func (s *Solver) addClauseLits(lits []lit.Lit) bool {
	if s.unsat {
		return false
	}

	// Sort so duplicate and complementary literals of the same variable
	// become adjacent before this scan; relying on the caller to pass
	// pre-sorted literals would only work for already-sorted input.
	cp := make([]lit.Lit, len(lits))
	copy(cp, lits)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Index() < cp[j].Index() })

	out := cp[:0]
	var last lit.Lit
	haveLast := false
	for _, l := range cp {
		if s.valueLit(l) == lit.LTrue {
			return true // clause already satisfied at the root
		}
		if haveLast && l.Equal(last.Negate()) {
			return true // tautology: l and its negation both present
		}
		if s.valueLit(l) == lit.LFalse {
			continue // false at the root; drop
		}
		if haveLast && l.Equal(last) {
			continue // duplicate
		}
		out = append(out, l)
		last = l
		haveLast = true
	}
	lits = out

	if len(lits) == 0 {
		s.unsat = true
		return false
	}
	if len(lits) == 1 {
		s.enqueue(lits[0], ClauseRefUndef)
		if s.propagate().Valid() {
			s.unsat = true
			return false
		}
		return true
	}

	ref := s.clauses.Alloc(lits, false)
	s.originalRefs = append(s.originalRefs, ref)
	s.stats.OriginalClauses++
	s.attachClause(ref)
	return true
}

// attachClause registers watchers for the clause's first two literals.
func (s *Solver) attachClause(ref ClauseRef) {
	c := s.clauses.Get(ref)
	first, second := c.At(0), c.At(1)
	s.watches.append(first.Negate(), Watcher{Clause: ref, Blocker: second})
	s.watches.append(second.Negate(), Watcher{Clause: ref, Blocker: first})
}
