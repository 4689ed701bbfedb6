package solver

import "github.com/nekosat/nekosat/internal/lit"

// Watcher is an entry in a literal's watch list: the clause watching that
// literal's negation, plus a blocker literal that lets BCP skip loading
// the clause entirely when the blocker is already satisfied.
type Watcher struct {
	Clause  ClauseRef
	Blocker lit.Lit
}

// watchList is the per-literal set of watchers, indexed densely by
// lit.Lit.Index() so both polarities of every variable are cheap slice
// accesses.
type watchList [][]Watcher

func newWatchList() watchList {
	return watchList{}
}

func (w *watchList) grow(n int) {
	for len(*w) < n {
		*w = append(*w, nil)
	}
}

func (w *watchList) at(l lit.Lit) []Watcher {
	return (*w)[l.Index()]
}

func (w *watchList) append(l lit.Lit, watcher Watcher) {
	idx := l.Index()
	(*w)[idx] = append((*w)[idx], watcher)
}

func (w *watchList) set(l lit.Lit, entries []Watcher) {
	(*w)[l.Index()] = entries
}
