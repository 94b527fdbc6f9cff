package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
)

var rootCmd = &cobra.Command{
	Use:           "sudoku",
	Short:         "Generate, solve and serve 9x9 Sudoku puzzles",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// newSolver maps an engine name to a solver. The budget only applies to the
// strategy engines; the SAT engine has no node count to cap.
func newSolver(kind string, budget int) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		s := solver.NewBacktrackingSolver()
		s.Budget = budget
		return s, nil
	case "copy", "cow":
		s := solver.NewCopySolver()
		s.Budget = budget
		return s, nil
	case "sat":
		return solver.NewSATSolver(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want backtrack, copy or sat)", kind)
	}
}
