package solver

import "fmt"

// MalformedInputError reports a clause literal that references a variable
// outside the declared [0, n) range.
type MalformedInputError struct {
	Literal int
	NumVars int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("solver: literal %d references a variable outside [1, %d]", e.Literal, e.NumVars)
}

// invariantViolation is raised (via panic) when BCP or conflict analysis
// observes state the solver's own invariants guarantee cannot occur. It
// is a diagnostic-only path: reaching it means a bug in the core, not a
// recoverable condition a caller can act on, so it is treated as fatal.
type invariantViolation struct {
	msg string
}

func (e *invariantViolation) Error() string {
	return "solver: invariant violation: " + e.msg
}
