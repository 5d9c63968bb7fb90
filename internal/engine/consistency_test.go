package engine

import (
	"errors"
	"testing"

	"github.com/nonogram-go/solver/internal/model"
)

func TestConsistencyRuleMakesMoreProgressThanOverlapAndGapFillAlone(t *testing.T) {
	p := buildPuzzle(t,
		[][]int{{2, 2}, {2, 2}, {}, {1, 1}, {3}},
		[][]int{{2, 1}, {2, 1}, {1}, {2, 1}, {2, 1}},
	)

	overlapGapFillOnly := New()
	overlapGapFillOnly.rules = []Rule{OverlapRule, GapFillRule}
	baseline, err := overlapGapFillOnly.Solve(p)
	if !errors.Is(err, ErrStuck) {
		t.Fatalf("Solve() error = %v, want ErrStuck", err)
	}

	grid, err := New().Solve(p)
	if !errors.Is(err, ErrStuck) {
		t.Fatalf("Solve() error = %v, want ErrStuck (this puzzle needs a guess, not just stronger line rules)", err)
	}
	if grid.UnsolvedCount() >= baseline.UnsolvedCount() {
		t.Errorf("DefaultRules (with ConsistencyRule) should resolve more cells than overlap+gap-fill alone: got %d unsolved, baseline had %d", grid.UnsolvedCount(), baseline.UnsolvedCount())
	}

	seeded, err := New().SolveWithSeed(p, []Assumption{{Row: 3, Col: 0, Value: model.Full}})
	if err != nil {
		t.Fatalf("SolveWithSeed() returned error: %v", err)
	}
	if !seeded.IsComplete() {
		t.Errorf("seeding the ambiguous cell should let ConsistencyRule finish the puzzle")
	}
}

func TestSolveWithSeedRejectsConflictingSeed(t *testing.T) {
	p := buildPuzzle(t,
		[][]int{{1}},
		[][]int{{}},
	)

	_, err := New().SolveWithSeed(p, []Assumption{{Row: 0, Col: 0, Value: model.Full}})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("SolveWithSeed() error = %v, want ErrInvalid", err)
	}
}

func TestSolveWithSeedNoSeedsMatchesSolve(t *testing.T) {
	p := buildPuzzle(t,
		[][]int{{5}, {1}, {5}, {1}, {5}},
		[][]int{{3, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 3}},
	)

	a, errA := New().Solve(p)
	b, errB := New().SolveWithSeed(p, nil)
	if errA != errB {
		t.Fatalf("errors differ: %v vs %v", errA, errB)
	}
	if gridString(a) != gridString(b) {
		t.Errorf("SolveWithSeed(nil) should match Solve()")
	}
}
