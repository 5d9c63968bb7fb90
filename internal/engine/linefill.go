package engine

// generateLineFillings returns every boolean sequence of the given length
// whose run-length grouping matches hints exactly (true = Full). It is
// the combinatorial core shared by ConsistencyRule (which filters these
// against already-Known cells) and the soundness property tests (which
// use it, unfiltered, as an independent reference solver).
func generateLineFillings(hints []int, length int) [][]bool {
	var out [][]bool
	var rec func(pos int, hintIdx int, line []bool)
	rec = func(pos int, hintIdx int, line []bool) {
		if hintIdx == len(hints) {
			rest := make([]bool, length)
			copy(rest, line)
			out = append(out, rest)
			return
		}
		h := hints[hintIdx]
		remaining := 0
		for _, rh := range hints[hintIdx+1:] {
			remaining += rh + 1
		}
		for start := pos; start+h+remaining <= length; start++ {
			next := make([]bool, length)
			copy(next, line)
			for i := start; i < start+h; i++ {
				next[i] = true
			}
			rec(start+h+1, hintIdx+1, next)
		}
	}
	rec(0, 0, make([]bool, length))
	return out
}
