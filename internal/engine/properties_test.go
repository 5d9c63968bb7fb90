package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nonogram-go/solver/internal/model"
)

// matchesHints reports whether line's run-length grouping equals hints.
func matchesHints(line []bool, hints []int) bool {
	var runs []int
	inRun := false
	for _, full := range line {
		if full {
			if !inRun {
				runs = append(runs, 0)
				inRun = true
			}
			runs[len(runs)-1]++
		} else {
			inRun = false
		}
	}
	if len(runs) != len(hints) {
		return false
	}
	for i, h := range hints {
		if runs[i] != h {
			return false
		}
	}
	return true
}

// enumerateCompletions brute-force enumerates every grid (row-major bool
// slice, true = Full) consistent with both rowHints and colHints, by
// generating each row's valid fillings independently and checking column
// consistency once every row is placed.
func enumerateCompletions(rowHints, colHints [][]int, w, h int) [][]bool {
	rowOptions := make([][][]bool, h)
	for r, hints := range rowHints {
		rowOptions[r] = generateLineFillings(hints, w)
	}

	var out [][]bool
	grid := make([]bool, w*h)
	var rec func(r int)
	rec = func(r int) {
		if r == h {
			for c := 0; c < w; c++ {
				col := make([]bool, h)
				for rr := 0; rr < h; rr++ {
					col[rr] = grid[rr*w+c]
				}
				if !matchesHints(col, colHints[c]) {
					return
				}
			}
			out = append(out, append([]bool(nil), grid...))
			return
		}
		for _, option := range rowOptions[r] {
			copy(grid[r*w:(r+1)*w], option)
			rec(r + 1)
		}
	}
	rec(0)
	return out
}

func TestSoundnessAgainstBruteForceEnumeration(t *testing.T) {
	rowHints := [][]int{{2, 2}, {2, 2}, {}, {1, 1}, {3}}
	colHints := [][]int{{2, 1}, {2, 1}, {1}, {2, 1}, {2, 1}}

	completions := enumerateCompletions(rowHints, colHints, 5, 5)
	require.NotEmpty(t, completions, "test puzzle must admit at least one completion")

	p := buildPuzzle(t, rowHints, colHints)
	grid, err := New().Solve(p)
	require.ErrorIs(t, err, ErrStuck, "this puzzle is expected to be Stuck, not fully Solved")

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell := grid.At(r, c)
			if !cell.IsKnown() {
				continue
			}
			want := cell.Square() == model.Full
			for _, completion := range completions {
				got := completion[r*5+c]
				require.Equalf(t, want, got,
					"cell (%d,%d) revealed as %v but a valid completion has %v", r, c, cell, got)
			}
		}
	}
}

func TestMonotonicityAcrossSteps(t *testing.T) {
	p := buildPuzzle(t,
		[][]int{{5}, {1}, {5}, {1}, {5}},
		[][]int{{3, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 3}},
	)

	w := newWorker(p, DefaultRules(), nil)
	var prev *model.Grid
	for {
		processed, err := w.step()
		require.NoError(t, err)

		if prev != nil {
			for r := 0; r < p.H(); r++ {
				for c := 0; c < p.W(); c++ {
					old := prev.At(r, c)
					if old.IsKnown() {
						require.Equal(t, old, w.grid.At(r, c),
							"cell (%d,%d) changed from a Known value", r, c)
					}
				}
			}
		}

		snapshot := model.NewGrid(p.W(), p.H())
		for r := 0; r < p.H(); r++ {
			for c := 0; c < p.W(); c++ {
				if v := w.grid.At(r, c); v.IsKnown() {
					snapshot.Line(model.Row(r)).Reveal(c, v.Square())
				}
			}
		}
		prev = snapshot

		if !processed {
			break
		}
	}

	require.True(t, w.grid.IsComplete())
}

func TestConfluenceRuleOrderDoesNotAffectResult(t *testing.T) {
	rowHints := [][]int{{2}, {3}, {2, 1}, {2, 1}, {5}}
	p := buildPuzzle(t, rowHints, rowHints)

	forward := New()
	forward.rules = []Rule{OverlapRule, GapFillRule}
	reversed := New()
	reversed.rules = []Rule{GapFillRule, OverlapRule}

	gridA, errA := forward.Solve(p)
	gridB, errB := reversed.Solve(p)

	require.Equal(t, errA, errB)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			require.Equal(t, gridA.At(r, c), gridB.At(r, c), "cell (%d,%d) differs by rule order", r, c)
		}
	}
}
