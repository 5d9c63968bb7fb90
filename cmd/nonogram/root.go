package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	noColor   bool
	useSearch bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nonogram",
		Short: "Solve nonogram (picross) puzzles by line-based constraint propagation",
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace engine line processing to stderr")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	root.PersistentFlags().BoolVar(&useSearch, "search", false, "fall back to backtracking search when propagation alone gets stuck")

	root.AddCommand(newSolveCmd())
	return root
}

// Execute runs the root command; main only has to check the error.
func Execute() error {
	return newRootCmd().Execute()
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	if !verbose {
		log.SetLevel(logrus.WarnLevel)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
