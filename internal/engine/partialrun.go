package engine

// PartialRun brackets the positions where a single hint's run could start
// and end along its line: the run of the hint's length must fit somewhere
// within [Lo, Hi). Lo only ever increases and Hi only ever decreases as
// propagation learns more.
type PartialRun struct {
	Lo, Hi int
}

// newPartialRun returns the widest possible bracket for a line of the
// given length: the run could start anywhere from 0 up to the end of the
// line.
func newPartialRun(lineLength int) PartialRun {
	return PartialRun{Lo: 0, Hi: lineLength}
}
