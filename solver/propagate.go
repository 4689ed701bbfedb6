package solver

import "github.com/nekosat/nekosat/internal/lit"

// propagate drains the propagation queue (the trail suffix starting at
// qhead), enforcing the two-watched-literal invariant, and returns the
// conflicting clause reference, or ClauseRefUndef if none arose.
//
// For each newly-true literal p, every clause watching ¬p is inspected;
// a blocker literal lets most clauses be skipped without touching their
// storage. Clauses that cannot find a new watch are unit (or
// conflicting) under the current assignment.
func (s *Solver) propagate() ClauseRef {
	confl := ClauseRefUndef

	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead]
		s.qhead++
		s.stats.Propagations++

		watchers := s.watches.at(p)
		keep := 0
		i := 0
		for i < len(watchers) {
			w := watchers[i]
			blocker := w.Blocker

			if s.valueLit(blocker) == lit.LTrue {
				watchers[keep] = w
				i++
				keep++
				continue
			}

			cr := w.Clause
			c := s.clauses.Get(cr)
			falseLit := p.Negate()
			if c.Lits[0].Equal(falseLit) {
				c.Lits[0], c.Lits[1] = c.Lits[1], falseLit
			}
			i++

			firstLit := c.Lits[0]
			newWatcher := Watcher{Clause: cr, Blocker: firstLit}
			if !firstLit.Equal(blocker) && s.valueLit(firstLit) == lit.LTrue {
				watchers[keep] = newWatcher
				keep++
				continue
			}

			foundNewWatch := false
			for k := 2; k < c.Len(); k++ {
				if s.valueLit(c.Lits[k]) != lit.LFalse {
					c.Lits[1], c.Lits[k] = c.Lits[k], falseLit
					s.watches.append(c.Lits[1].Negate(), newWatcher)
					foundNewWatch = true
					break
				}
			}
			if foundNewWatch {
				continue
			}

			// No replacement found: the clause is unit (or conflicting).
			watchers[keep] = newWatcher
			keep++
			if s.valueLit(firstLit) == lit.LFalse {
				confl = cr
				s.qhead = len(s.trail)
				for i < len(watchers) {
					watchers[keep] = watchers[i]
					i++
					keep++
				}
			} else {
				s.enqueue(firstLit, cr)
			}
		}
		s.watches.set(p, watchers[:keep])
	}

	return confl
}
