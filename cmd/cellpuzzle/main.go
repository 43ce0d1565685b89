// Package main is a small command-line demonstrator for pkg/solver. It is a
// consumer of the library, not part of its contract: the engine itself
// exposes no CLI (§6 "Programmatic API (the only interface)").
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/cellpuzzle/internal/puzzlekit"
	"github.com/gitrdm/cellpuzzle/pkg/solver"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cellpuzzle",
		Short: "Solve cell-placement puzzles with the constraint-propagation engine",
	}
	root.AddCommand(newSudokuCommand())
	root.AddCommand(newThermometerCommand())
	root.AddCommand(newBinairoCommand())
	return root
}

func newSudokuCommand() *cobra.Command {
	var givens string
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a standard 9x9 Sudoku from a givens string",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzlekit.Sudoku(3, givens)
			if err != nil {
				return err
			}
			return printFirstSolution(cmd, p, 9)
		},
	}
	cmd.Flags().StringVar(&givens, "givens", strings.Repeat(".", 81), "81-character givens string")
	return cmd
}

func newThermometerCommand() *cobra.Command {
	var givens string
	var chains []string
	cmd := &cobra.Command{
		Use:   "thermometer",
		Short: "Solve a 9x9 Thermometer Sudoku",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzlekit.ThermometerSudoku(givens, chains)
			if err != nil {
				return err
			}
			return printFirstSolution(cmd, p, 9)
		},
	}
	cmd.Flags().StringVar(&givens, "givens", strings.Repeat(".", 81), "81-character givens string")
	cmd.Flags().StringSliceVar(&chains, "chain", nil, "a thermometer chain in coordinate mini-language, repeatable")
	return cmd
}

func newBinairoCommand() *cobra.Command {
	var size int
	var givens string
	cmd := &cobra.Command{
		Use:   "binairo",
		Short: "Solve a Binairo grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzlekit.Binairo(size, givens)
			if err != nil {
				return err
			}
			return printFirstSolution(cmd, p, size)
		},
	}
	cmd.Flags().IntVar(&size, "size", 10, "grid side length")
	cmd.Flags().StringVar(&givens, "givens", "", "givens string, or empty for none")
	return cmd
}

func printFirstSolution(cmd *cobra.Command, p *solver.Puzzle, width int) error {
	cursor := p.Solve(nil)
	defer cursor.Close()
	if !cursor.Next() {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution")
		return nil
	}
	sol := cursor.Solution()
	for row := 0; row*width < len(sol); row++ {
		var line []string
		for col := 0; col < width && row*width+col < len(sol); col++ {
			line = append(line, fmt.Sprintf("%d", sol[row*width+col]))
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(line, " "))
	}
	return nil
}
