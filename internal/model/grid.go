package model

// Grid is the H x W array of PartialSquare knowledge, stored row-major.
// It is owned by the engine's Worker for the lifetime of a solve and
// handed to the caller once a terminal classification is reached.
type Grid struct {
	w, h  int
	cells []PartialSquare
}

// NewGrid returns a Grid of the given dimensions with every cell Unknown.
func NewGrid(w, h int) *Grid {
	return &Grid{w: w, h: h, cells: make([]PartialSquare, w*h)}
}

func (g *Grid) W() int { return g.w }
func (g *Grid) H() int { return g.h }

func (g *Grid) index(r, c int) int { return r*g.w + c }

// At returns the current knowledge for cell (r, c).
func (g *Grid) At(r, c int) PartialSquare {
	return g.cells[g.index(r, c)]
}

// IsComplete reports whether every cell in the grid is Known.
func (g *Grid) IsComplete() bool {
	for _, cell := range g.cells {
		if !cell.IsKnown() {
			return false
		}
	}
	return true
}

// UnsolvedCount returns the number of cells that are still Unknown. It is
// not part of the core solving contract; it exists to support progress
// reporting the way the teacher's Puzzle.unsolvedCounts does for Sudoku.
func (g *Grid) UnsolvedCount() int {
	n := 0
	for _, cell := range g.cells {
		if !cell.IsKnown() {
			n++
		}
	}
	return n
}

// reveal sets cell (r, c) to Known(x). It returns changed=true if this
// newly revealed a previously-Unknown cell, and ok=false if the cell was
// already Known to a different value (a conflict).
func (g *Grid) reveal(r, c int, x Square) (changed, ok bool) {
	idx := g.index(r, c)
	cur := g.cells[idx]
	want := knownOf(x)

	switch {
	case cur == Unknown:
		g.cells[idx] = want
		return true, true
	case cur == want:
		return false, true
	default:
		return false, false
	}
}

// Line returns a mutable view over the given line, translating positions
// along the line into (row, col) grid coordinates. The view is a
// short-lived handle into the grid; it must not outlive the propagation
// step that constructed it.
func (g *Grid) Line(li LineIndex) *LineView {
	return &LineView{grid: g, li: li}
}

// LineView is a transient, mutable façade over one row or column of a
// Grid. It is constructed per propagation step from a LineIndex plus the
// owning Grid, never stored across steps (see design note on index-based
// views).
type LineView struct {
	grid *Grid
	li   LineIndex
}

// Len returns the number of cells along this line.
func (v *LineView) Len() int {
	if v.li.Kind == RowKind {
		return v.grid.w
	}
	return v.grid.h
}

func (v *LineView) coords(k int) (r, c int) {
	if v.li.Kind == RowKind {
		return v.li.Index, k
	}
	return k, v.li.Index
}

// At returns the current knowledge at position k along the line.
func (v *LineView) At(k int) PartialSquare {
	r, c := v.coords(k)
	return v.grid.At(r, c)
}

// Reveal sets position k along the line to Known(x). See Grid.reveal for
// the changed/ok contract.
func (v *LineView) Reveal(k int, x Square) (changed, ok bool) {
	r, c := v.coords(k)
	return v.grid.reveal(r, c, x)
}
