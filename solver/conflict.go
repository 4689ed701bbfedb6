package solver

import (
	"github.com/k0kubun/pp"

	"github.com/nekosat/nekosat/internal/lit"
)

// analyze derives a learned clause and backjump level from conflict by
// 1-UIP resolution over the implication graph, which is never
// materialized: it is walked implicitly via reason clauses and the
// trail, in reverse, including a basic (non-recursive) self-subsumption
// minimization of the learned clause.
func (s *Solver) analyze(conflict ClauseRef) (learnt []lit.Lit, backjumpLevel int) {
	p := lit.Lit{X: lit.Undef}
	pathCount := 0
	idx := len(s.trail) - 1

	learnt = append(learnt, lit.Lit{}) // room for the asserting literal

	for {
		if !conflict.Valid() {
			pp.Println("invariant violation during conflict analysis", s.varData, p, s.decisionLevel())
			panic(&invariantViolation{msg: "analyze: conflict clause reference is undefined mid-resolution"})
		}
		c := s.clauses.Get(conflict)
		if c.Learnt {
			s.clauseBumpActivity(c)
		}

		start := 0
		if p.X != lit.Undef {
			start = 1
		}
		for i := start; i < c.Len(); i++ {
			q := c.At(i)
			if !s.seen[q.Var()] && s.varData[q.Var()].Level > 0 {
				s.varBumpActivity(q.Var())
				s.seen[q.Var()] = true
				if s.varData[q.Var()].Level == s.decisionLevel() {
					pathCount++
				} else {
					learnt = append(learnt, q)
				}
			}
		}

		// Select the next literal to resolve on: walk the trail backward
		// to the next seen variable.
		for {
			p = s.trail[idx]
			idx--
			if s.seen[p.Var()] {
				break
			}
		}
		conflict = s.varData[p.Var()].Reason
		s.seen[p.Var()] = false
		pathCount--
		if pathCount <= 0 {
			break
		}
	}
	learnt[0] = p.Negate()

	toClear := make([]lit.Lit, len(learnt))
	copy(toClear, learnt)

	// Basic self-subsumption minimization: drop a literal if every other
	// literal of its reason clause is already seen or at level 0.
	kept := 1
	for i := 1; i < len(learnt); i++ {
		v := learnt[i].Var()
		reason := s.varData[v].Reason
		if !reason.Valid() {
			learnt[kept] = learnt[i]
			kept++
			continue
		}
		redundant := true
		rc := s.clauses.Get(reason)
		for k := 1; k < rc.Len(); k++ {
			w := rc.At(k)
			if !s.seen[w.Var()] && s.varData[w.Var()].Level > 0 {
				redundant = false
				break
			}
		}
		if !redundant {
			learnt[kept] = learnt[i]
			kept++
		}
	}
	learnt = learnt[:kept]

	if len(learnt) == 1 {
		backjumpLevel = 0
	} else {
		maxIdx := 1
		for i := 2; i < len(learnt); i++ {
			if s.varData[learnt[i].Var()].Level > s.varData[learnt[maxIdx].Var()].Level {
				maxIdx = i
			}
		}
		backjumpLevel = s.varData[learnt[maxIdx].Var()].Level
		learnt[maxIdx], learnt[1] = learnt[1], learnt[maxIdx]
	}

	for _, l := range toClear {
		s.seen[l.Var()] = false
	}

	return learnt, backjumpLevel
}
