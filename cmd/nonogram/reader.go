package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nonogram-go/solver/internal/model"
)

// ErrMalformedFile is returned by ReadPuzzle when the input does not
// follow the ROWS/COLS section format.
var ErrMalformedFile = errors.New("malformed puzzle file")

// ReadPuzzle reads a puzzle description of the form
//
//	ROWS
//	3
//	1 1
//	COLS
//	2
//	1
//	2
//
// one "ROWS" section followed by one "COLS" section, each line holding a
// line's hints as whitespace-separated positive integers (a blank line
// means that line has no hints, i.e. it is entirely empty). Puzzle file
// parsing is an external collaborator of the solving core, the way the
// teacher's puzzle.PuzzleFromFile sits outside internal/solver.
func ReadPuzzle(r io.Reader) (*model.Puzzle, error) {
	scanner := bufio.NewScanner(r)

	section := ""
	b := model.NewBuilder()
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		switch text {
		case "ROWS":
			section = "ROWS"
			continue
		case "COLS":
			section = "COLS"
			continue
		}

		switch section {
		case "ROWS":
			hints, err := parseHints(text)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			b.PushRow(hints)
		case "COLS":
			hints, err := parseHints(text)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			b.PushCol(hints)
		default:
			return nil, errors.Wrapf(ErrMalformedFile, "line %d: expected ROWS or COLS section header", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading puzzle file")
	}

	return b.Build()
}

func parseHints(text string) ([]int, error) {
	if text == "" {
		return nil, nil
	}
	fields := strings.Fields(text)
	hints := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedFile, "%q is not an integer", f)
		}
		hints = append(hints, v)
	}
	return hints, nil
}
