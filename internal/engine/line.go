package engine

import (
	"github.com/pkg/errors"

	"github.com/nonogram-go/solver/internal/model"
	"github.com/nonogram-go/solver/internal/set"
)

// PartialLine bundles everything a deduction rule needs for one row or
// column: the line's hints, its current run brackets, a mutable view onto
// the grid cells, and the set of positions revealed during the current
// rule pass. It is constructed fresh for each propagation step and must
// not be retained past it.
type PartialLine struct {
	index model.LineIndex
	hints []int
	runs  []PartialRun
	cells *model.LineView
	dirty *set.Set[int]
}

func newPartialLine(li model.LineIndex, hints []int, runs []PartialRun, cells *model.LineView) *PartialLine {
	return &PartialLine{
		index: li,
		hints: hints,
		runs:  runs,
		cells: cells,
		dirty: set.NewSet[int](),
	}
}

// Index returns the LineIndex this view was built for.
func (pl *PartialLine) Index() model.LineIndex { return pl.index }

// Hints returns the line's ordered hint sequence. Rules must not modify
// the returned slice.
func (pl *PartialLine) Hints() []int { return pl.hints }

// Runs returns the current PartialRun bracket for each hint, in hint
// order. Rules must not modify the returned slice directly; use
// RevealRun to tighten a bracket.
func (pl *PartialLine) Runs() []PartialRun { return pl.runs }

// Len returns the number of cells along this line.
func (pl *PartialLine) Len() int { return pl.cells.Len() }

// At returns the current knowledge at position k.
func (pl *PartialLine) At(k int) model.PartialSquare { return pl.cells.At(k) }

// Reveal sets position i to Known(x). If i was already Known(x) this is a
// no-op; if it was Known to a different value, ErrInvalid is returned.
func (pl *PartialLine) Reveal(i int, x model.Square) error {
	changed, ok := pl.cells.Reveal(i, x)
	if !ok {
		return errors.Wrapf(ErrInvalid, "%s: conflicting reveal of %s at position %d", pl.index, x, i)
	}
	if changed {
		pl.dirty.Add(i)
	}
	return nil
}

// RevealAll reveals every position in [lo, hi) as x.
func (pl *PartialLine) RevealAll(lo, hi int, x model.Square) error {
	for i := lo; i < hi; i++ {
		if err := pl.Reveal(i, x); err != nil {
			return err
		}
	}
	return nil
}

// RevealRun reveals [lo, hi) as Full and tightens the PartialRun bracket
// for the run-th hint so that it must contain [lo, hi): the new Lo is the
// earliest the run could start and still cover up to hi, and the new Hi is
// the latest it could end and still cover lo.
// Returns ErrInvalid if the bracket tightens to an infeasible interval.
func (pl *PartialLine) RevealRun(run, lo, hi int) error {
	if err := pl.RevealAll(lo, hi, model.Full); err != nil {
		return err
	}

	h := pl.hints[run]
	newLo := hi - h
	if newLo < 0 {
		newLo = 0
	}
	newHi := lo + h

	r := &pl.runs[run]
	if newLo > r.Lo {
		r.Lo = newLo
	}
	if newHi < r.Hi {
		r.Hi = newHi
	}
	if r.Lo+h > r.Hi {
		return errors.Wrapf(ErrInvalid, "%s: run %d bracket [%d,%d) cannot hold hint %d", pl.index, run, r.Lo, r.Hi, h)
	}
	return nil
}

// dirtyPositions returns the positions revealed during this pass, sorted
// for deterministic cross-line enqueue order.
func (pl *PartialLine) dirtyPositions() []int {
	return set.SortedValues(pl.dirty, func(a, b int) int { return a - b })
}
