package engine

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nonogram-go/solver/internal/model"
)

// Assumption is a tentative reveal fed to SolveWithSeed: "assume cell
// (Row, Col) is Value." It is how a backtracker (internal/search) layers
// guesses on top of the core's otherwise-guess-free propagation.
type Assumption struct {
	Row, Col int
	Value    model.Square
}

// Solver is the external factory for the propagation engine: it holds a
// registered set of deduction rules and runs them against a Puzzle.
type Solver struct {
	rules  []Rule
	logger *logrus.Logger
}

// New returns a Solver configured with the engine's default rule set
// (overlap, then gap-fill, then consistency; see DefaultRules).
func New() *Solver {
	return &Solver{rules: DefaultRules()}
}

// Register appends a custom rule to the solver, run after the
// previously registered rules on every pass. The rule must be sound and
// monotone (see Rule); the engine does not verify this.
func (s *Solver) Register(r Rule) {
	s.rules = append(s.rules, r)
}

// WithLogger attaches a logrus.Logger that the solver uses to trace line
// processing and terminal classification at Debug/Info level. Passing
// nil (the default) keeps the solver silent. Returns the Solver so the
// call can be chained onto New().
func (s *Solver) WithLogger(logger *logrus.Logger) *Solver {
	s.logger = logger
	return s
}

// Solve runs propagation on puzzle until it reaches a fixed point. On
// *Solved* it returns (grid, nil) with every cell Known. Otherwise it
// returns the partial grid alongside ErrStuck or ErrInvalid (checkable
// with errors.Is), so a caller layering a backtracker on top can inspect
// what propagation alone was able to determine.
func (s *Solver) Solve(puzzle *model.Puzzle) (*model.Grid, error) {
	var entry *logrus.Entry
	if s.logger != nil {
		entry = s.logger.WithField("component", "engine")
	}

	w := newWorker(puzzle, s.rules, entry)
	return w.run()
}

// SolveWithSeed behaves like Solve, but first reveals every assumption
// (in order) before propagation runs. An assumption that conflicts with
// the puzzle's own deductions makes the whole seed set infeasible: it is
// reported as ErrInvalid, the same terminal classification propagation
// itself would reach, so a caller cannot tell a bad guess apart from a
// puzzle that was simply never solvable. That is intentional — a
// backtracker only needs to know "this branch is dead," not why.
func (s *Solver) SolveWithSeed(puzzle *model.Puzzle, seeds []Assumption) (*model.Grid, error) {
	var entry *logrus.Entry
	if s.logger != nil {
		entry = s.logger.WithField("component", "engine")
	}

	w := newWorker(puzzle, s.rules, entry)
	for _, a := range seeds {
		if _, ok := w.grid.Line(model.Row(a.Row)).Reveal(a.Col, a.Value); !ok {
			return w.grid, errors.Wrapf(ErrInvalid, "seed conflicts with an earlier reveal at row %d col %d", a.Row, a.Col)
		}
	}
	return w.run()
}
