package solver

import (
	"testing"

	"github.com/nekosat/nekosat/config"
	"github.com/nekosat/nekosat/internal/lit"
)

func TestCancelUntilResetsValuesAndSavesPhase(t *testing.T) {
	s := New(config.Default(), 3)

	s.newDecisionLevel()
	s.enqueue(lit.New(0, false), ClauseRefUndef) // x1 = true
	s.newDecisionLevel()
	s.enqueue(lit.New(1, true), ClauseRefUndef) // x2 = false

	if s.decisionLevel() != 2 {
		t.Fatalf("decisionLevel() = %d, want 2", s.decisionLevel())
	}

	s.cancelUntil(0)

	if s.decisionLevel() != 0 {
		t.Fatalf("decisionLevel() after cancelUntil(0) = %d, want 0", s.decisionLevel())
	}
	if len(s.trail) != 0 {
		t.Fatalf("trail not empty after cancelUntil(0): %v", s.trail)
	}
	if s.valueVar(0) != lit.LUndef || s.valueVar(1) != lit.LUndef {
		t.Fatal("popped variables should be Undef after cancelUntil")
	}
	// Phase saving: x1 was assigned true (sign=false), x2 was assigned
	// false (sign=true). phase[v] stores "preferred value is True".
	if !s.phase[0] {
		t.Fatal("phase[0] should record that x1's last value was True")
	}
	if s.phase[1] {
		t.Fatal("phase[1] should record that x2's last value was False")
	}
}

func TestCancelUntilTwiceIsIdempotent(t *testing.T) {
	s := New(config.Default(), 2)
	s.newDecisionLevel()
	s.enqueue(lit.New(0, false), ClauseRefUndef)

	s.cancelUntil(0)
	trailAfterFirst := append([]lit.Lit{}, s.trail...)
	s.cancelUntil(0)
	if len(s.trail) != len(trailAfterFirst) {
		t.Fatalf("second cancelUntil(0) changed trail length: %d vs %d", len(s.trail), len(trailAfterFirst))
	}
}

func TestPickBranchLitUsesSavedPhase(t *testing.T) {
	s := New(config.Default(), 1)
	s.newDecisionLevel()
	s.enqueue(lit.New(0, false), ClauseRefUndef) // prefer True next time
	s.cancelUntil(0)

	next := s.pickBranchLit()
	if next.Var() != 0 {
		t.Fatalf("pickBranchLit() var = %d, want 0", next.Var())
	}
	if next.Sign() {
		t.Fatal("pickBranchLit() should have reused the saved True phase (sign=false)")
	}
}

func TestPickBranchLitDefaultsToFalse(t *testing.T) {
	s := New(config.Default(), 1)
	next := s.pickBranchLit()
	if !next.Sign() {
		t.Fatal("pickBranchLit() on a fresh variable should default to the False phase (sign=true)")
	}
}
