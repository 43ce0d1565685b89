package solver

import "fmt"

// ParityNoTripletsConstraint forbids three consecutive cells along a line from
// holding the same value (§4.D; Binairo's "no three in a row" rule, also used
// by other 2-symbol grid puzzles).
type ParityNoTripletsConstraint struct {
	cells []int // a single row or column, in order
}

func NewParityNoTripletsConstraint(p *Puzzle, cells []int) (*ParityNoTripletsConstraint, error) {
	if len(cells) < 3 {
		return nil, fmt.Errorf("NewParityNoTripletsConstraint: need at least three cells: %w", ErrEmptyCellList)
	}
	for _, c := range cells {
		if err := p.checkCell("NewParityNoTripletsConstraint", c); err != nil {
			return nil, err
		}
	}
	return &ParityNoTripletsConstraint{cells: append([]int(nil), cells...)}, nil
}

func (c *ParityNoTripletsConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *ParityNoTripletsConstraint) Process(state StateView) Result {
	for i := 0; i+2 < len(c.cells); i++ {
		a, b, d := c.cells[i], c.cells[i+1], c.cells[i+2]
		va, okA := state.Value(a)
		vb, okB := state.Value(b)
		vd, okD := state.Value(d)

		switch {
		case okA && okB && okD:
			if va == vb && vb == vd {
				return Violation()
			}
		case okA && okB && va == vb:
			state.MarkImpossible(d, va)
		case okB && okD && vb == vd:
			state.MarkImpossible(a, vb)
		case okA && okD && va == vd:
			state.MarkImpossible(b, va)
		}
	}
	return None()
}

func (c *ParityNoTripletsConstraint) String() string {
	return fmt.Sprintf("ParityNoTriplets(cells=%v)", c.cells)
}

// ParityEvennessConstraint requires a line to hold exactly as many of the
// lower symbol (MinValue) as the higher symbol (MaxValue) — the Binairo
// row/column balance rule (§4.D, generalised to any two-symbol range).
type ParityEvennessConstraint struct {
	cells []int
}

func NewParityEvennessConstraint(p *Puzzle, cells []int) (*ParityEvennessConstraint, error) {
	if len(cells) == 0 || len(cells)%2 != 0 {
		return nil, fmt.Errorf("NewParityEvennessConstraint: need a nonzero even cell count: %w", ErrLengthMismatch)
	}
	for _, c := range cells {
		if err := p.checkCell("NewParityEvennessConstraint", c); err != nil {
			return nil, err
		}
	}
	return &ParityEvennessConstraint{cells: append([]int(nil), cells...)}, nil
}

func (c *ParityEvennessConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *ParityEvennessConstraint) Process(state StateView) Result {
	half := len(c.cells) / 2
	lowCount, highCount := 0, 0
	var unfixed []int
	lowValue := state.MinValue()
	highValue := state.MaxValue()
	for _, cell := range c.cells {
		v, ok := state.Value(cell)
		if !ok {
			unfixed = append(unfixed, cell)
			continue
		}
		if v == lowValue {
			lowCount++
		} else if v == highValue {
			highCount++
		}
	}
	if lowCount > half || highCount > half {
		return Violation()
	}
	if len(unfixed) == 0 {
		return Replace()
	}
	if lowCount == half {
		for _, cell := range unfixed {
			state.MustBe(cell, highValue)
		}
		return Replace()
	}
	if highCount == half {
		for _, cell := range unfixed {
			state.MustBe(cell, lowValue)
		}
		return Replace()
	}
	return None()
}

func (c *ParityEvennessConstraint) String() string {
	return fmt.Sprintf("ParityEvenness(cells=%v)", c.cells)
}

// ParityUniqueRowsColumnsConstraint requires that no two of the given lines
// (each a full row or column) are identical once fully assigned — Binairo's
// distinct-rows/distinct-columns rule (§4.D).
type ParityUniqueRowsColumnsConstraint struct {
	lines [][]int
}

func NewParityUniqueRowsColumnsConstraint(p *Puzzle, lines [][]int) (*ParityUniqueRowsColumnsConstraint, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("NewParityUniqueRowsColumnsConstraint: need at least two lines: %w", ErrInvalidRange)
	}
	length := len(lines[0])
	cp := make([][]int, len(lines))
	for li, line := range lines {
		if len(line) != length {
			return nil, fmt.Errorf("NewParityUniqueRowsColumnsConstraint: line %d length %d, want %d: %w", li, len(line), length, ErrLengthMismatch)
		}
		for _, c := range line {
			if err := p.checkCell("NewParityUniqueRowsColumnsConstraint", c); err != nil {
				return nil, err
			}
		}
		cp[li] = append([]int(nil), line...)
	}
	return &ParityUniqueRowsColumnsConstraint{lines: cp}, nil
}

func (c *ParityUniqueRowsColumnsConstraint) AffectedCells() ([]int, bool) {
	var all []int
	for _, l := range c.lines {
		all = append(all, l...)
	}
	return all, false
}

func lineValues(state StateView, line []int) ([]int, bool) {
	vals := make([]int, len(line))
	for i, cell := range line {
		v, ok := state.Value(cell)
		if !ok {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

func linesEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (c *ParityUniqueRowsColumnsConstraint) Process(state StateView) Result {
	var complete [][]int
	for _, line := range c.lines {
		if vals, ok := lineValues(state, line); ok {
			for _, other := range complete {
				if linesEqual(vals, other) {
					return Violation()
				}
			}
			complete = append(complete, vals)
		}
	}
	return None()
}

func (c *ParityUniqueRowsColumnsConstraint) String() string {
	return fmt.Sprintf("ParityUniqueRowsColumns(lines=%d)", len(c.lines))
}
