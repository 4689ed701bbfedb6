package solver

// VarData records how a variable came to be assigned: the clause that
// forced it (ClauseRefUndef for a decision or a root-level fact) and the
// decision level at which it was assigned.
type VarData struct {
	Reason ClauseRef
	Level  int
}
