package solver

import (
	"context"

	"github.com/nekosat/nekosat/internal/lit"
)

// Solve runs the outer decide/propagate/analyze/backjump loop with Luby
// restarts until the instance is decided SAT or UNSAT, or ctx is
// cancelled. Cancellation is checked once per restart iteration, never
// inside BCP or analysis, since the core itself supports no internal
// notion of bounded runtime; a cancelled search reports
// Result{Satisfiable: false} with a nil Model, indistinguishable from
// UNSAT to the caller unless it inspects ctx.Err() itself.
func (s *Solver) Solve(ctx context.Context) Result {
	if s.unsat {
		return Result{Satisfiable: false}
	}
	if s.NumVars() == 0 {
		return Result{Satisfiable: true, Model: nil}
	}

	restartIndex := 0
	for {
		select {
		case <-ctx.Done():
			return Result{Satisfiable: false}
		default:
		}

		budget := luby(s.cfg.RestartBase, restartIndex)
		sat, ok := s.search(budget)
		if ok {
			if sat {
				model := make([]bool, s.NumVars())
				for v := 0; v < s.NumVars(); v++ {
					model[v] = s.assigns[v] == lit.LTrue
				}
				s.cancelUntil(0)
				return Result{Satisfiable: true, Model: model}
			}
			s.unsat = true
			return Result{Satisfiable: false}
		}
		restartIndex++
		s.stats.Restarts++
	}
}

// search runs propagate/analyze/decide until either the instance is
// decided (ok=true, sat reports which way) or the restart budget of
// maxConflicts is exhausted (ok=false).
func (s *Solver) search(maxConflicts int) (sat bool, ok bool) {
	conflicts := 0

	for {
		confl := s.propagate()
		if confl.Valid() {
			s.stats.Conflicts++
			conflicts++

			if s.decisionLevel() == 0 {
				return false, true
			}

			learnt, backjumpLevel := s.analyze(confl)
			s.cancelUntil(backjumpLevel)

			if len(learnt) == 1 {
				s.enqueue(learnt[0], ClauseRefUndef)
			} else {
				ref := s.clauses.Alloc(learnt, true)
				s.learnedRefs = append(s.learnedRefs, ref)
				s.attachClause(ref)
				c := s.clauses.Get(ref)
				s.clauseBumpActivity(c)
				c.lbd = s.computeLBD(learnt)
				s.stats.LearnedClauses++
				s.stats.LearnedLiterals += uint64(len(learnt))
				s.stats.lbdSum += uint64(c.lbd)
				s.enqueue(learnt[0], ref)
			}

			s.varDecayActivity()
			s.clauseDecayActivity()
			continue
		}

		// No conflict.
		if conflicts >= maxConflicts {
			s.cancelUntil(0)
			return false, false
		}

		next := s.pickBranchLit()
		if next.X == lit.Undef {
			return true, true
		}
		s.stats.Decisions++
		s.newDecisionLevel()
		s.enqueue(next, ClauseRefUndef)
	}
}
