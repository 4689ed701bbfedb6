package solver

import "github.com/nekosat/nekosat/internal/lit"

// valueVar returns the current LBool assignment of v.
func (s *Solver) valueVar(v lit.Var) lit.LBool {
	return s.assigns[v]
}

// valueLit returns the current LBool assignment of l, accounting for its
// polarity.
func (s *Solver) valueLit(l lit.Lit) lit.LBool {
	v := s.assigns[l.Var()]
	if v == lit.LUndef {
		return lit.LUndef
	}
	if l.Sign() {
		return v.Negate()
	}
	return v
}

// decisionLevel returns the number of decision levels currently open.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// newDecisionLevel opens a new decision level starting at the current
// trail length.
func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

// enqueue assigns l true with the given reason (ClauseRefUndef for a
// decision or root fact). Precondition: l is not already assigned false.
func (s *Solver) enqueue(l lit.Lit, reason ClauseRef) {
	v := l.Var()
	s.assigns[v] = lit.FromBool(!l.Sign())
	s.varData[v] = VarData{Reason: reason, Level: s.decisionLevel()}
	s.trail = append(s.trail, l)
}

// cancelUntil pops trail entries above decision level d, resetting their
// values to Undef, saving their last polarity for phase saving, and
// reinserting them into the VSIDS order.
func (s *Solver) cancelUntil(d int) {
	if s.decisionLevel() <= d {
		return
	}
	for c := len(s.trail) - 1; c >= s.trailLim[d]; c-- {
		l := s.trail[c]
		v := l.Var()
		s.phase[v] = s.assigns[v] == lit.LTrue
		s.assigns[v] = lit.LUndef
		s.insertVarOrder(v)
	}
	s.qhead = s.trailLim[d]
	s.trail = s.trail[:s.qhead]
	s.trailLim = s.trailLim[:d]
}
