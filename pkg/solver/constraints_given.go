package solver

import "fmt"

// GivenConstraint forces one cell to a known value, then dissolves (§4.D). It is
// the constraint the givens mini-language and every domain-specific puzzle
// builder use to seed a puzzle's clues.
type GivenConstraint struct {
	cell  int
	value int
}

// NewGivenConstraint validates cell and value against p's ranges before
// returning the constraint, so a malformed clue fails at construction time
// rather than mid-search (§7).
func NewGivenConstraint(p *Puzzle, cell, value int) (*GivenConstraint, error) {
	if err := p.checkCell("NewGivenConstraint", cell); err != nil {
		return nil, err
	}
	if err := p.checkValue("NewGivenConstraint", value); err != nil {
		return nil, err
	}
	return &GivenConstraint{cell: cell, value: value}, nil
}

func (c *GivenConstraint) AffectedCells() ([]int, bool) { return []int{c.cell}, false }

func (c *GivenConstraint) Process(state StateView) Result {
	if !state.IsPossible(c.cell, c.value) {
		return Violation()
	}
	state.MustBe(c.cell, c.value)
	return Replace()
}

func (c *GivenConstraint) String() string {
	return fmt.Sprintf("Given(cell=%d, value=%d)", c.cell, c.value)
}
