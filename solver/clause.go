package solver

import "github.com/nekosat/nekosat/internal/lit"

// ClauseRef is a stable handle into a ClauseAllocator. It remains valid for
// the lifetime of the solver: this minimal core never deletes clauses, so
// handles are never invalidated or reused.
type ClauseRef uint32

// ClauseRefUndef is the sentinel "no clause" handle, used as a reason for
// decisions and root-level facts.
const ClauseRefUndef ClauseRef = 1<<32 - 1

// Valid reports whether r refers to an actual clause.
func (r ClauseRef) Valid() bool {
	return r != ClauseRefUndef
}

// Clause is an original or learned disjunction of at least two literals.
// Slots 0 and 1 are, by convention, the two watched literals.
type Clause struct {
	Lits     []lit.Lit
	Learnt   bool
	Activity float32
	// lbd is the literal block distance at learning time; a diagnostic
	// only (see solver/lbd.go), since this core never uses it to drive
	// clause deletion.
	lbd int
}

// Len returns the number of literals remaining in the clause.
func (c *Clause) Len() int {
	return len(c.Lits)
}

// At returns the i'th literal of the clause.
func (c *Clause) At(i int) lit.Lit {
	return c.Lits[i]
}

// ClauseAllocator owns clause storage in a contiguous arena addressed by
// ClauseRef, avoiding a pointer graph between clauses, watchers, and
// reasons. Clauses are never freed in the minimal core, so this is a plain
// append-only slice rather than a map keyed for deletion support.
type ClauseAllocator struct {
	clauses []*Clause
}

// NewClauseAllocator returns an empty ClauseAllocator.
func NewClauseAllocator() *ClauseAllocator {
	return &ClauseAllocator{}
}

// Alloc stores lits as a new clause and returns its handle. The caller
// retains ownership of marking it learned; lits is copied.
func (a *ClauseAllocator) Alloc(lits []lit.Lit, learnt bool) ClauseRef {
	cp := make([]lit.Lit, len(lits))
	copy(cp, lits)
	a.clauses = append(a.clauses, &Clause{Lits: cp, Learnt: learnt})
	return ClauseRef(len(a.clauses) - 1)
}

// Get returns the clause referenced by r.
func (a *ClauseAllocator) Get(r ClauseRef) *Clause {
	return a.clauses[r]
}
