// Package puzzlekit assembles pkg/solver primitives into the domain-specific
// puzzle families used by the demo CLI and the end-to-end scenario tests. It is a consumer of pkg/solver, exactly as the
// teacher's own examples/* directories are consumers of pkg/minikanren rather
// than part of its core: none of this package is itself the constraint
// engine.
package puzzlekit

import (
	"fmt"

	"github.com/gitrdm/cellpuzzle/pkg/solver"
)

// rowCells returns the flat indices of one row of a width×height grid.
func rowCells(width, row int) []int {
	cells := make([]int, width)
	for col := 0; col < width; col++ {
		cells[col] = row*width + col
	}
	return cells
}

// colCells returns the flat indices of one column of a width×height grid.
func colCells(width, height, col int) []int {
	cells := make([]int, height)
	for row := 0; row < height; row++ {
		cells[row] = row*width + col
	}
	return cells
}

// Sudoku builds a standard boxSize²×boxSize² Sudoku: row, column, and box
// UniquenessConstraints plus GivenConstraints parsed from the givens
// mini-language (§6, §8 scenario 1).
func Sudoku(boxSize int, givens string) (*solver.Puzzle, error) {
	n := boxSize * boxSize
	p, err := solver.NewPuzzle(n*n, 1, n)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.Sudoku: %w", err)
	}

	for row := 0; row < n; row++ {
		uc, err := solver.NewUniquenessConstraint(p, rowCells(n, row))
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.Sudoku: row %d: %w", row, err)
		}
		p.AddConstraint(uc)
	}
	for col := 0; col < n; col++ {
		uc, err := solver.NewUniquenessConstraint(p, colCells(n, n, col))
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.Sudoku: col %d: %w", col, err)
		}
		p.AddConstraint(uc)
	}
	for boxRow := 0; boxRow < boxSize; boxRow++ {
		for boxCol := 0; boxCol < boxSize; boxCol++ {
			cells := make([]int, 0, n)
			for r := 0; r < boxSize; r++ {
				for c := 0; c < boxSize; c++ {
					row := boxRow*boxSize + r
					col := boxCol*boxSize + c
					cells = append(cells, row*n+col)
				}
			}
			uc, err := solver.NewUniquenessConstraint(p, cells)
			if err != nil {
				return nil, fmt.Errorf("puzzlekit.Sudoku: box (%d,%d): %w", boxRow, boxCol, err)
			}
			p.AddConstraint(uc)
		}
	}

	gcs, err := solver.ParseGivens(p, givens)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.Sudoku: %w", err)
	}
	for _, gc := range gcs {
		p.AddConstraint(gc)
	}
	return p, nil
}

// ThermometerSudoku builds a 9×9 Sudoku with additional strictly-increasing
// "thermometer" chains, each given in the coordinate mini-language (§8
// scenario 2).
func ThermometerSudoku(givens string, chains []string) (*solver.Puzzle, error) {
	p, err := Sudoku(3, givens)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.ThermometerSudoku: %w", err)
	}
	for _, chain := range chains {
		cells, err := solver.ParseCoordinates(9, chain)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.ThermometerSudoku: chain %q: %w", chain, err)
		}
		lt, err := solver.NewLessThanConstraint(p, cells)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.ThermometerSudoku: chain %q: %w", chain, err)
		}
		p.AddConstraint(lt)
	}
	return p, nil
}

// KillerCage is one sum-cage of a Killer Sudoku: the cells it covers and the
// total their values must sum to.
type KillerCage struct {
	Cells []string // coordinate mini-language segments, e.g. "A1,B1,C1"
	Sum   int
}

// KillerSudoku builds a 9×9 Sudoku with additional non-overlapping sum-cages
// (§8 scenario 3). anchors is a givens-mini-language string supplying the
// puzzle's "given anchors" (cells fixed outside of any cage reasoning).
func KillerSudoku(anchors string, cages []KillerCage) (*solver.Puzzle, error) {
	p, err := Sudoku(3, anchors)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.KillerSudoku: %w", err)
	}
	for _, cage := range cages {
		var cells []int
		for _, seg := range cage.Cells {
			cs, err := solver.ParseCoordinates(9, seg)
			if err != nil {
				return nil, fmt.Errorf("puzzlekit.KillerSudoku: cage %v: %w", cage.Cells, err)
			}
			cells = append(cells, cs...)
		}
		sc, err := solver.NewSumConstraint(p, cage.Sum, cells)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.KillerSudoku: cage %v: %w", cage.Cells, err)
		}
		uc, err := solver.NewUniquenessConstraint(p, cells)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.KillerSudoku: cage %v: %w", cage.Cells, err)
		}
		p.AddConstraints(sc, uc)
	}
	return p, nil
}

// LittleKillerDiagonal is one diagonal sum clue of a Little Killer puzzle: the
// cells along the clued diagonal (in reading order) and the total they sum
// to. Little Killer carries no givens and no uniqueness constraints — the
// diagonal sums alone determine the grid (§8 scenario 4).
type LittleKillerDiagonal struct {
	Cells []string
	Sum   int
}

// LittleKiller builds an N-cell puzzle (values 1..n) constrained only by its
// diagonal SumConstraints.
func LittleKiller(n int, diagonals []LittleKillerDiagonal) (*solver.Puzzle, error) {
	p, err := solver.NewPuzzle(n*n, 1, n)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.LittleKiller: %w", err)
	}
	for _, d := range diagonals {
		var cells []int
		for _, seg := range d.Cells {
			cs, err := solver.ParseCoordinates(n, seg)
			if err != nil {
				return nil, fmt.Errorf("puzzlekit.LittleKiller: diagonal %v: %w", d.Cells, err)
			}
			cells = append(cells, cs...)
		}
		sc, err := solver.NewSumConstraint(p, d.Sum, cells)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.LittleKiller: diagonal %v: %w", d.Cells, err)
		}
		p.AddConstraint(sc)
	}
	return p, nil
}

// Binairo builds a size×size binary-grid puzzle (values 0/1): every row and
// column forbids three-in-a-row, balances its count of 0s and 1s, and no two
// rows (or two columns) may be identical (§8 scenario 5).
func Binairo(size int, givens string) (*solver.Puzzle, error) {
	p, err := solver.NewPuzzle(size*size, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.Binairo: %w", err)
	}

	var rows, cols [][]int
	for row := 0; row < size; row++ {
		cells := rowCells(size, row)
		rows = append(rows, cells)
		nt, err := solver.NewParityNoTripletsConstraint(p, cells)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.Binairo: row %d: %w", row, err)
		}
		ev, err := solver.NewParityEvennessConstraint(p, cells)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.Binairo: row %d: %w", row, err)
		}
		p.AddConstraints(nt, ev)
	}
	for col := 0; col < size; col++ {
		cells := colCells(size, size, col)
		cols = append(cols, cells)
		nt, err := solver.NewParityNoTripletsConstraint(p, cells)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.Binairo: col %d: %w", col, err)
		}
		ev, err := solver.NewParityEvennessConstraint(p, cells)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.Binairo: col %d: %w", col, err)
		}
		p.AddConstraints(nt, ev)
	}
	rowUnique, err := solver.NewParityUniqueRowsColumnsConstraint(p, rows)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.Binairo: %w", err)
	}
	colUnique, err := solver.NewParityUniqueRowsColumnsConstraint(p, cols)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.Binairo: %w", err)
	}
	p.AddConstraints(rowUnique, colUnique)

	if givens != "" {
		gcs, err := solver.ParseGivens(p, givens)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.Binairo: %w", err)
		}
		for _, gc := range gcs {
			p.AddConstraint(gc)
		}
	}
	return p, nil
}

// OddEvenSudoku builds a 9×9 Sudoku in which a caller-supplied set of cells is
// constrained to share one parity, without the puzzle fixing which (§8
// scenario 6): consecutive cells of linkedCells are chained by same-parity
// links, so every solution has those cells all odd or all even.
func OddEvenSudoku(givens string, linkedCells []int) (*solver.Puzzle, error) {
	p, err := Sudoku(3, givens)
	if err != nil {
		return nil, fmt.Errorf("puzzlekit.OddEvenSudoku: %w", err)
	}
	sameParity := func(a, b int) bool { return a%2 == b%2 }
	for i := 0; i+1 < len(linkedCells); i++ {
		tc, err := solver.NewTwoCellLambdaConstraint(p, linkedCells[i], linkedCells[i+1], "same-parity", sameParity)
		if err != nil {
			return nil, fmt.Errorf("puzzlekit.OddEvenSudoku: %w", err)
		}
		p.AddConstraint(tc)
	}
	return p, nil
}

// CornerBlocks16 returns the 16 cells of a 9×9 grid's four 2×2 corner blocks —
// a representative choice of "16 specified cells" for OddEvenSudoku (§8
// scenario 6 does not name which cells; any symmetric, easily-described set
// demonstrates the same mechanic).
func CornerBlocks16() []int {
	var cells []int
	for _, rowPair := range [][2]int{{0, 1}, {7, 8}} {
		for _, colPair := range [][2]int{{0, 1}, {7, 8}} {
			for _, row := range rowPair {
				for _, col := range colPair {
					cells = append(cells, row*9+col)
				}
			}
		}
	}
	return cells
}
