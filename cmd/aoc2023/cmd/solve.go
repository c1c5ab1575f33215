package cmd

import (
	"fmt"
	"os"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
	"github.com/spf13/cobra"
)

var (
	solveDay  int
	solvePart int
)

var solveCmd = &cobra.Command{
	Use:   "solve [input-file]",
	Short: "Solves one part of a day",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, part := puzzle.Day(solveDay), puzzle.Part(solvePart)

		var input []byte
		var err error
		if len(args) == 1 {
			input, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cannot read input: %w", err)
			}
		} else {
			input, err = puzzle.SampleInput(day, part)
			if err != nil {
				return err
			}
		}

		solver, closeSolver, err := newSolver(cfg)
		if err != nil {
			return err
		}
		defer closeCache(closeSolver)

		answer, err := solver.Solve(cmd.Context(), day, part, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "The answer is: %d\n", answer)
		return nil
	},
}

func init() {
	solveCmd.Flags().IntVarP(&solveDay, "day", "d", 0, "calendar day to solve")
	solveCmd.Flags().IntVarP(&solvePart, "part", "p", 0, "part of the day to solve")
	solveCmd.MarkFlagRequired("day")
	solveCmd.MarkFlagRequired("part")
	rootCmd.AddCommand(solveCmd)
}
