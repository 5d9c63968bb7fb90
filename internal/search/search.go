// Package search layers a recursive backtracker on top of the
// propagation-only core in internal/engine, adapting the choose/cover/
// recurse/uncover/backtrack shape of the teacher's Dancing Links exact-
// cover solver to nonogram run placement. Where the teacher's Algorithm X
// always covers the column with the fewest remaining candidate rows
// first (to minimize branching), Search picks the Unknown cell with the
// most Known neighbors as its branch point for the same reason: fewer
// live branches, faster convergence to Solved or ErrInvalid.
//
// A literal column-object/circular-linked-list exact-cover matrix has no
// natural nonogram encoding without enumerating every run placement as a
// matrix row, which blows up for long lines; this package keeps the
// teacher's search discipline and heuristic intent without that matrix.
package search

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nonogram-go/solver/internal/engine"
	"github.com/nonogram-go/solver/internal/model"
)

// Searcher wraps an engine.Solver (DefaultRules, which already includes
// engine.ConsistencyRule, so tentative reveals propagate real
// consequences) and drives it with a choose/guess/recurse/backtrack loop
// whenever propagation alone reaches ErrStuck.
type Searcher struct {
	solver *engine.Solver
	log    *logrus.Logger
}

// New returns a Searcher; logger may be nil.
func New(logger *logrus.Logger) *Searcher {
	s := engine.New()
	if logger != nil {
		s.WithLogger(logger)
	}
	return &Searcher{solver: s, log: logger}
}

// Solve runs propagation to a fixed point and, if that leaves the puzzle
// Stuck, backtracks over tentative reveals until it finds a completion
// or exhausts every branch. It returns ErrInvalid if the puzzle (or the
// stuck partial grid) admits no completion at all, and passes through
// ErrMalformedPuzzle/other errors from the underlying solver untouched.
func (s *Searcher) Solve(puzzle *model.Puzzle) (*model.Grid, error) {
	return s.search(puzzle, nil)
}

func (s *Searcher) search(puzzle *model.Puzzle, seeds []engine.Assumption) (*model.Grid, error) {
	grid, err := s.solver.SolveWithSeed(puzzle, seeds)
	if err == nil {
		return grid, nil
	}
	if errors.Is(err, engine.ErrInvalid) {
		return nil, engine.ErrInvalid
	}
	if !errors.Is(err, engine.ErrStuck) {
		return nil, err
	}

	r, c, ok := chooseBranchCell(grid)
	if !ok {
		// Every cell Known but IsComplete() false cannot happen; treat
		// defensively as stuck rather than panicking.
		return grid, engine.ErrStuck
	}

	for _, v := range [2]model.Square{model.Full, model.Empty} {
		next := make([]engine.Assumption, len(seeds), len(seeds)+1)
		copy(next, seeds)
		next = append(next, engine.Assumption{Row: r, Col: c, Value: v})

		if s.log != nil {
			s.log.WithField("component", "search").Debugf("branch (%d,%d)=%v, depth %d", r, c, v, len(next))
		}

		result, err := s.search(puzzle, next)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, engine.ErrInvalid) {
			continue
		}
		return nil, err
	}

	return nil, engine.ErrInvalid
}

// chooseBranchCell picks the Unknown cell adjacent to the most Known
// neighbors, a cheap proxy for "most constrained" that mirrors the
// teacher's fewest-remaining-candidates column choice without needing
// the per-line run brackets that stay private to internal/engine.
func chooseBranchCell(grid *model.Grid) (row, col int, ok bool) {
	bestScore := -1
	for r := 0; r < grid.H(); r++ {
		for c := 0; c < grid.W(); c++ {
			if grid.At(r, c).IsKnown() {
				continue
			}
			score := knownNeighbors(grid, r, c)
			if score > bestScore {
				bestScore, row, col, ok = score, r, c, true
			}
		}
	}
	return row, col, ok
}

func knownNeighbors(grid *model.Grid, r, c int) int {
	n := 0
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		rr, cc := r+d[0], c+d[1]
		if rr < 0 || rr >= grid.H() || cc < 0 || cc >= grid.W() {
			continue
		}
		if grid.At(rr, cc).IsKnown() {
			n++
		}
	}
	return n
}
