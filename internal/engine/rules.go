package engine

import (
	"github.com/pkg/errors"

	"github.com/nonogram-go/solver/internal/model"
)

// Rule is a pure function from a PartialLine to reveals on that line. A
// rule may call Reveal/RevealAll/RevealRun any number of times. Rules
// must be sound (never reveal a value inconsistent with at least one
// completion of the line) and monotone (never widen knowledge); the
// engine does not verify this, it only composes rules in registration
// order until a pass produces no further reveals.
type Rule func(*PartialLine) error

// DefaultRules returns the deduction rules the engine runs by default, in
// order: overlap, gap-fill, then the cell-aware consistency check.
// OverlapRule and GapFillRule alone never consult a line's already-Known
// cells (only its hints and run brackets), so a Full or Empty cell
// discovered by a crossing line is otherwise invisible to a line's own
// deduction — every pass would produce the identical reveals, since their
// inputs never change across passes. ConsistencyRule closes that gap: it
// re-derives a line's candidates from its hints and filters them against
// whatever the rest of the grid has since revealed, so information really
// does flow across crossing lines pass over pass, to the fixed point §8's
// Checkerboard and Stairs scenarios require.
func DefaultRules() []Rule {
	return []Rule{OverlapRule, GapFillRule, ConsistencyRule}
}

// OverlapRule (R1) computes, for each hint, the interval that every valid
// placement of that hint's run must intersect, and reveals it Full.
//
// For a line of length L with hints h0..h(k-1): span is the minimum
// length needed to fit every run with a single gap between consecutive
// runs, and slack = L - span is how far any run could be pushed right of
// its leftmost position. Run i's leftmost placement starts at `left`;
// its rightmost placement starts at `left + slack`. Every completion's
// placement of run i therefore covers at least [left+slack, left+hint).
func OverlapRule(pl *PartialLine) error {
	hints := pl.Hints()
	L := pl.Len()

	span := 0
	for _, h := range hints {
		span += h
	}
	if len(hints) > 0 {
		span += len(hints) - 1
	}
	slack := L - span
	if slack < 0 {
		return errors.Wrapf(ErrInvalid, "%s: hints span %d exceeds line length %d", pl.Index(), span, L)
	}

	left := 0
	for i, h := range hints {
		lo := left + slack
		hi := left + h
		if lo < hi {
			if err := pl.RevealRun(i, lo, hi); err != nil {
				return err
			}
		}
		left += h + 1
	}
	return nil
}

// GapFillRule (R2) reveals Empty every cell that lies outside every run's
// permitted bracket: before the first run's earliest start, between one
// run's latest end and the next run's earliest start, and after the last
// run's latest end. A line with no hints at all is entirely Empty.
func GapFillRule(pl *PartialLine) error {
	L := pl.Len()
	runs := pl.Runs()

	if len(runs) == 0 {
		return pl.RevealAll(0, L, model.Empty)
	}

	if err := pl.RevealAll(0, runs[0].Lo, model.Empty); err != nil {
		return err
	}
	for i := 0; i < len(runs)-1; i++ {
		if err := pl.RevealAll(runs[i].Hi, runs[i+1].Lo, model.Empty); err != nil {
			return err
		}
	}
	return pl.RevealAll(runs[len(runs)-1].Hi, L, model.Empty)
}
