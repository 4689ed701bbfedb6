package solver

import "github.com/nekosat/nekosat/internal/lit"

const (
	varActivityRescaleThreshold   = 1e100
	clauseActivityRescaleThreshold = 1e20
)

// insertVarOrder reinserts v into the VSIDS order if not already present.
func (s *Solver) insertVarOrder(v lit.Var) {
	if !s.order.InHeap(v) {
		s.order.Insert(v)
	}
}

// varBumpActivity bumps v's VSIDS activity by the current increment,
// rescaling all activities if any would overflow.
func (s *Solver) varBumpActivity(v lit.Var) {
	s.order.Bump(v, s.varIncr)
	if s.order.Activity(v) > varActivityRescaleThreshold {
		s.order.ScaleActivity(1 / varActivityRescaleThreshold)
		s.varIncr *= 1 / varActivityRescaleThreshold
	}
}

// varDecayActivity implements lazy decay: rather than scaling every
// activity down, the increment is scaled up, which is equivalent.
func (s *Solver) varDecayActivity() {
	s.varIncr *= 1 / s.cfg.VarDecay
}

// clauseBumpActivity bumps a learned clause's activity, rescaling all
// learned-clause activities if any would overflow.
func (s *Solver) clauseBumpActivity(c *Clause) {
	c.Activity += s.claIncr
	if c.Activity > clauseActivityRescaleThreshold {
		for _, ref := range s.learnedRefs {
			s.clauses.Get(ref).Activity *= 1e-20
		}
		s.claIncr *= 1e-20
	}
}

func (s *Solver) clauseDecayActivity() {
	s.claIncr *= 1 / float32(s.cfg.ClauseDecay)
}

// pickBranchLit returns the next decision literal chosen by VSIDS
// activity, with phase saving: the literal's polarity is the variable's
// last assigned value (default False, since phase starts as the zero
// value). Returns lit.Lit{X: lit.Undef} once every variable is assigned.
func (s *Solver) pickBranchLit() lit.Lit {
	var v lit.Var = lit.VarUndef
	for v == lit.VarUndef || s.valueVar(v) != lit.LUndef {
		if s.order.Empty() {
			return lit.Lit{X: lit.Undef}
		}
		v = s.order.RemoveMax()
	}
	sign := !s.phase[v]
	return lit.New(v, sign)
}
