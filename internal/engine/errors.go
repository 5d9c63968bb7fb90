// Package engine implements the line-based constraint-propagation solver:
// the PartialRun/PartialLine knowledge views, the overlap and gap-fill
// deduction rules, and the Worker that drives them to a fixed point.
package engine

import (
	"github.com/pkg/errors"

	"github.com/nonogram-go/solver/internal/model"
)

var (
	// ErrInvalid is returned when propagation discovers the puzzle admits
	// no completion: a reveal conflicts with an already-Known cell, or a
	// PartialRun bracket tightens to an empty interval.
	ErrInvalid = errors.New("invalid")

	// ErrStuck is returned when propagation reaches a fixed point (the
	// dirty-line queue has drained) with at least one cell still Unknown.
	ErrStuck = errors.New("stuck")

	// ErrMalformedPuzzle is the sentinel model.Builder.Build returns when
	// a puzzle is not well-formed, re-exported here so callers only need
	// to import engine. Solve itself never returns it: a Puzzle can only
	// be obtained from a successful Build.
	ErrMalformedPuzzle = model.ErrMalformedPuzzle
)
