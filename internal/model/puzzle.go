package model

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrMalformedPuzzle is returned by Builder.Build when a row or column's
// hints cannot possibly fit in the line's length.
var ErrMalformedPuzzle = errors.New("malformed puzzle")

// Puzzle is the immutable specification of a nonogram: its dimensions and
// the ordered hint sequence for every row and column. A Puzzle is built
// once via Builder and is read-only for the rest of its lifetime.
type Puzzle struct {
	rowHints [][]int
	colHints [][]int
}

// W returns the puzzle width (number of columns).
func (p *Puzzle) W() int { return len(p.colHints) }

// H returns the puzzle height (number of rows).
func (p *Puzzle) H() int { return len(p.rowHints) }

// Hints returns the hint sequence for the given line. The returned slice
// must not be modified.
func (p *Puzzle) Hints(li LineIndex) []int {
	if li.Kind == RowKind {
		return p.rowHints[li.Index]
	}
	return p.colHints[li.Index]
}

// LineLength returns the number of cells along the given line: W for a
// row, H for a column.
func (p *Puzzle) LineLength(li LineIndex) int {
	if li.Kind == RowKind {
		return p.W()
	}
	return p.H()
}

// Lines yields every LineIndex of the puzzle in the canonical order
// Row(0), Row(1), ..., Row(H-1), Col(0), ..., Col(W-1).
func (p *Puzzle) Lines() iter.Seq[LineIndex] {
	return func(yield func(LineIndex) bool) {
		for i := range p.H() {
			if !yield(Row(i)) {
				return
			}
		}
		for j := range p.W() {
			if !yield(Col(j)) {
				return
			}
		}
	}
}

// Builder accumulates row and column hint sequences for a Puzzle. Append
// rows and columns with PushRow/PushCol, then call Build to validate and
// obtain the finished Puzzle.
type Builder struct {
	rowHints [][]int
	colHints [][]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// PushRow appends a row's hint sequence. Returns the Builder so calls can
// be chained.
func (b *Builder) PushRow(hints []int) *Builder {
	b.rowHints = append(b.rowHints, hints)
	return b
}

// PushCol appends a column's hint sequence. Returns the Builder so calls
// can be chained.
func (b *Builder) PushCol(hints []int) *Builder {
	b.colHints = append(b.colHints, hints)
	return b
}

// Build validates the accumulated hints and returns the finished Puzzle.
// A row or column whose hints cannot fit within its line length fails
// with ErrMalformedPuzzle.
func (b *Builder) Build() (*Puzzle, error) {
	w, h := len(b.colHints), len(b.rowHints)

	for i, hints := range b.rowHints {
		if err := checkLineFits(hints, w); err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
	}
	for j, hints := range b.colHints {
		if err := checkLineFits(hints, h); err != nil {
			return nil, errors.Wrapf(err, "col %d", j)
		}
	}

	return &Puzzle{rowHints: b.rowHints, colHints: b.colHints}, nil
}

// checkLineFits reports ErrMalformedPuzzle if hints cannot fit in a line
// of the given length: Σ hints + max(0, len(hints)-1) gaps must be ≤ length.
func checkLineFits(hints []int, length int) error {
	span := 0
	for _, h := range hints {
		if h < 1 {
			return errors.Wrapf(ErrMalformedPuzzle, "hint %d is not a positive run length", h)
		}
		span += h
	}
	if len(hints) > 0 {
		span += len(hints) - 1
	}
	if span > length {
		return errors.Wrapf(ErrMalformedPuzzle, "hints span %d but line length is %d", span, length)
	}
	return nil
}
