package solver

import "github.com/nekosat/nekosat/internal/lit"

// computeLBD returns the literal block distance of lits: the number of
// distinct decision levels among them. This core carries no
// learned-clause deletion policy, so LBD is retained purely as a
// read-only diagnostic attached to each learned clause and folded into
// Statistics.AverageLBD.
func (s *Solver) computeLBD(lits []lit.Lit) int {
	seen := make(map[int]struct{}, len(lits))
	for _, l := range lits {
		seen[s.varData[l.Var()].Level] = struct{}{}
	}
	return len(seen)
}
