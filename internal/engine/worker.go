package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/nonogram-go/solver/internal/model"
	"github.com/nonogram-go/solver/internal/set"
)

// worker holds all the mutable state of one solve: the grid being
// filled in, the per-line run brackets, and the FIFO dirty-line queue
// with its membership set. It owns this state exclusively for its
// lifetime; nothing about it is safe to share across goroutines.
type worker struct {
	puzzle *model.Puzzle
	rules  []Rule
	log    *logrus.Entry

	grid *model.Grid
	runs map[model.LineIndex][]PartialRun

	queue  []model.LineIndex
	queued *set.Set[model.LineIndex]
}

func newWorker(puzzle *model.Puzzle, rules []Rule, log *logrus.Entry) *worker {
	w := &worker{
		puzzle: puzzle,
		rules:  rules,
		log:    log,
		grid:   model.NewGrid(puzzle.W(), puzzle.H()),
		runs:   make(map[model.LineIndex][]PartialRun, puzzle.W()+puzzle.H()),
		queue:  make([]model.LineIndex, 0, puzzle.W()+puzzle.H()),
		queued: set.NewSet[model.LineIndex](),
	}

	for li := range puzzle.Lines() {
		hints := puzzle.Hints(li)
		lineRuns := make([]PartialRun, len(hints))
		length := puzzle.LineLength(li)
		for i := range lineRuns {
			lineRuns[i] = newPartialRun(length)
		}
		w.runs[li] = lineRuns

		w.queue = append(w.queue, li)
		w.queued.Add(li)
	}

	return w
}

// enqueue pushes li onto the dirty queue unless it is already pending.
func (w *worker) enqueue(li model.LineIndex) {
	if w.queued.Contains(li) {
		return
	}
	w.queue = append(w.queue, li)
	w.queued.Add(li)
}

// dequeue pops the front of the FIFO queue. The second return value is
// false if the queue was empty.
func (w *worker) dequeue() (model.LineIndex, bool) {
	if len(w.queue) == 0 {
		return model.LineIndex{}, false
	}
	li := w.queue[0]
	w.queue = w.queue[1:]
	w.queued.Remove(li)
	return li, true
}

// step processes the next dirty line to local saturation and enqueues
// any crossing lines affected by its reveals. It returns processed=false
// once the queue is empty; any reveal conflict or infeasible bracket
// short-circuits immediately with the causing error.
func (w *worker) step() (processed bool, err error) {
	li, ok := w.dequeue()
	if !ok {
		return false, nil
	}

	line := newPartialLine(li, w.puzzle.Hints(li), w.runs[li], w.grid.Line(li))

	for {
		before := line.dirty.Size()
		for _, rule := range w.rules {
			if err := rule(line); err != nil {
				return false, err
			}
		}
		if line.dirty.Size() == before {
			break
		}
	}

	if w.log != nil {
		w.log.WithFields(logrus.Fields{
			"line":    li.String(),
			"reveals": line.dirty.Size(),
		}).Debug("line processed")
	}

	for _, k := range line.dirtyPositions() {
		w.enqueue(li.LineThrough(k))
	}

	return true, nil
}

// run drives propagation to its fixed point and classifies the result.
func (w *worker) run() (*model.Grid, error) {
	for {
		processed, err := w.step()
		if err != nil {
			return w.grid, err
		}
		if !processed {
			break
		}
	}

	if w.grid.IsComplete() {
		if w.log != nil {
			w.log.Info("solved")
		}
		return w.grid, nil
	}

	if w.log != nil {
		w.log.WithField("unsolved", w.grid.UnsolvedCount()).Info("stuck")
	}
	return w.grid, ErrStuck
}
