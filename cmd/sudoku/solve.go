package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

var solveFlags struct {
	engine  string
	budget  int
	timeout time.Duration
	stats   bool
	prof    bool
}

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle from a file or stdin",
	Long: `Solve reads an 81-character board (digits, with '0' or '.' for empty cells;
whitespace is ignored) from the given file or stdin and prints the solved grid.
An unsolvable board is a normal outcome, reported as "no solution".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveFlags.engine, "engine", "e", "backtrack", "solver engine: backtrack|copy|sat")
	solveCmd.Flags().IntVar(&solveFlags.budget, "budget", 0, "abort after this many branch nodes (0 = unlimited)")
	solveCmd.Flags().DurationVar(&solveFlags.timeout, "timeout", 0, "abort after this long (0 = no limit)")
	solveCmd.Flags().BoolVar(&solveFlags.stats, "stats", false, "print node count and duration to stderr")
	solveCmd.Flags().BoolVar(&solveFlags.prof, "profile", false, "write a CPU profile to the working directory")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveFlags.prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	var in []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		in, err = io.ReadAll(os.Stdin)
	} else {
		in, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}
	b, err := domain.ParseBoard(string(in))
	if err != nil {
		return err
	}

	s, err := newSolver(solveFlags.engine, solveFlags.budget)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if solveFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveFlags.timeout)
		defer cancel()
	}

	out, st, err := s.Solve(ctx, b)
	if solveFlags.stats {
		fmt.Fprintf(os.Stderr, "nodes=%d duration=%s\n", st.Nodes, st.Duration.Round(time.Microsecond))
	}
	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Println("no solution")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Print(out.Format())
	return nil
}
