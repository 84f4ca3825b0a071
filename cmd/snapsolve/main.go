package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shubhs27/Snap-n-Solve/internal/difficulty"
	"github.com/shubhs27/Snap-n-Solve/internal/domain"
	"github.com/shubhs27/Snap-n-Solve/internal/ports"
	"github.com/shubhs27/Snap-n-Solve/internal/solver"
	"github.com/shubhs27/Snap-n-Solve/internal/validator"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "snapsolve",
		Short:        "Sudoku solving, validation and difficulty grading engine",
		SilenceUsage: true,
	}
	root.AddCommand(
		newSolveCommand(),
		newValidateCommand(),
		newAnalyzeCommand(),
		newServeCommand(),
	)
	return root
}

// readGrid loads a grid from the file argument, or stdin when the
// argument is absent or "-". Accepted format: 81 cells of [1-9], with
// '0' or '.' for empty, whitespace ignored.
func readGrid(args []string) (domain.Grid, error) {
	var data []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return domain.Grid{}, err
	}
	return domain.ParseGrid(string(data))
}

func pickSolver(kind string) ports.Solver {
	if kind == "backtrack" || kind == "backtracking" {
		return solver.NewBacktrackingSolver()
	}
	return solver.NewBestFirstSolver()
}

func newSolveCommand() *cobra.Command {
	var solverKind string
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Solve a puzzle and print the completed grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			out, st, err := pickSolver(solverKind).Solve(ctx, &domain.Board{Values: g})
			if err != nil {
				if errors.Is(err, solver.ErrInfeasible) {
					return fmt.Errorf("puzzle is infeasible (%d nodes in %v)", st.Nodes, st.Duration.Round(time.Millisecond))
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Values.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&solverKind, "solver", "bestfirst", "solver to use: bestfirst|backtrack")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "abort the search after this long")
	return cmd
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [grid-file]",
		Short: "Check a grid for duplicate digits and dead cells",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args)
			if err != nil {
				return err
			}
			ok, reason, err := validator.New().Validate(cmd.Context(), &domain.Board{Values: g})
			if err != nil {
				return err
			}
			if !ok {
				return errors.New(reason)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [grid-file]",
		Short: "Grade an unsolved puzzle's difficulty",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args)
			if err != nil {
				return err
			}
			rep, err := difficulty.New().Analyze(cmd.Context(), &domain.Board{Values: g})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%.1f)\n", rep.Tier, rep.Score)
			fmt.Fprintf(w, "  empty cells:   %d\n", rep.EmptyCells)
			fmt.Fprintf(w, "  naked singles: %d\n", rep.NakedSingles)
			fmt.Fprintf(w, "  technique:     %.0f\n", rep.Technique)
			fmt.Fprintf(w, "  symmetry:      %.0f\n", rep.Symmetry)
			fmt.Fprintf(w, "  isolation:     %.2f\n", rep.Isolation)
			fmt.Fprintf(w, "  regional:      %.2f\n", rep.Regional)
			return nil
		},
	}
}
