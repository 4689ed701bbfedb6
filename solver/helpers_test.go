package solver

import "context"

// testCtx returns a never-cancelled context for tests exercising Solve,
// which requires a context.Context for externally bounded runtime.
func testCtx() context.Context {
	return context.Background()
}
