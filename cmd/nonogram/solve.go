package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nonogram-go/solver/internal/engine"
	"github.com/nonogram-go/solver/internal/model"
	"github.com/nonogram-go/solver/internal/render"
	"github.com/nonogram-go/solver/internal/search"
)

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a puzzle file and print the resulting grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	puzzle, err := ReadPuzzle(f)
	if err != nil {
		return err
	}

	log := newLogger()

	var grid *model.Grid
	var solveErr error
	if useSearch {
		grid, solveErr = search.New(log).Solve(puzzle)
	} else {
		grid, solveErr = engine.New().WithLogger(log).Solve(puzzle)
	}

	out := cmd.OutOrStdout()
	switch {
	case solveErr == nil:
		fmt.Fprintln(out, "Solved:")
	case errors.Is(solveErr, engine.ErrStuck):
		fmt.Fprintln(out, "Stuck (partial solution):")
	default:
		return solveErr
	}

	noColorOut := noColor || !isatty.IsTerminal(os.Stdout.Fd())
	render.Print(out, grid, noColorOut)

	if solveErr != nil {
		fmt.Fprintf(out, "\n%d cell(s) unresolved\n", grid.UnsolvedCount())
	}
	return nil
}
