package engine

import (
	"github.com/pkg/errors"

	"github.com/nonogram-go/solver/internal/model"
)

// ConsistencyRule is the engine's cell-aware rule: it enumerates every
// filling of the line consistent with its hints, discards the ones that
// disagree with cells already Known, and reveals any position that every
// surviving filling agrees on. It subsumes OverlapRule and GapFillRule
// (whatever they can reveal, enumeration agrees on too) but at
// combinatorial cost, so it runs last in DefaultRules: the cheaper rules
// narrow things down first, and ConsistencyRule is what actually lets a
// reveal made by one line feed into a crossing line's next pass — without
// it, a guess fed in through SolveWithSeed would never propagate either,
// since OverlapRule and GapFillRule only ever look at hints and brackets.
func ConsistencyRule(pl *PartialLine) error {
	candidates := generateLineFillings(pl.Hints(), pl.Len())

	filtered := candidates[:0:0]
	for _, c := range candidates {
		if consistentWithKnown(pl, c) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return errors.Wrapf(ErrInvalid, "%s: admits no filling consistent with known cells", pl.Index())
	}

	for k := 0; k < pl.Len(); k++ {
		allFull, allEmpty := true, true
		for _, c := range filtered {
			if c[k] {
				allEmpty = false
			} else {
				allFull = false
			}
		}
		switch {
		case allFull:
			if err := pl.Reveal(k, model.Full); err != nil {
				return err
			}
		case allEmpty:
			if err := pl.Reveal(k, model.Empty); err != nil {
				return err
			}
		}
	}
	return nil
}

func consistentWithKnown(pl *PartialLine, filling []bool) bool {
	for k := 0; k < pl.Len(); k++ {
		cell := pl.At(k)
		if !cell.IsKnown() {
			continue
		}
		want := cell.Square() == model.Full
		if filling[k] != want {
			return false
		}
	}
	return true
}
