package solver

import "fmt"

// UniquenessConstraint forbids any two of cells from sharing a value (§4.D).
// Propagation is deliberately minimal per the specification's resolution of an
// open question: eliminate a placed value from its peers, then let singleton
// promotion do the rest. No hidden-singles or naked-pairs reasoning.
type UniquenessConstraint struct {
	cells []int
}

// NewUniquenessConstraint validates every cell index against p before
// returning the constraint.
func NewUniquenessConstraint(p *Puzzle, cells []int) (*UniquenessConstraint, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("NewUniquenessConstraint: %w", ErrEmptyCellList)
	}
	for _, c := range cells {
		if err := p.checkCell("NewUniquenessConstraint", c); err != nil {
			return nil, err
		}
	}
	cp := append([]int(nil), cells...)
	return &UniquenessConstraint{cells: cp}, nil
}

func (c *UniquenessConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *UniquenessConstraint) Process(state StateView) Result {
	last, value, ok := state.LastPlaced()
	if !ok {
		// Initial round: nothing placed yet to propagate from, but still worth
		// checking already-fixed cells for a pre-existing conflict (e.g. two
		// GivenConstraints naming the same peer with the same value).
		seen := make(map[int]bool)
		for _, cell := range c.cells {
			if v, isFixed := state.Value(cell); isFixed {
				if seen[v] {
					return Violation()
				}
				seen[v] = true
			}
		}
		return None()
	}
	if !cellsContain(c.cells, last) {
		return None()
	}
	for _, cell := range c.cells {
		if cell == last {
			continue
		}
		if v, isFixed := state.Value(cell); isFixed {
			if v == value {
				return Violation()
			}
			continue
		}
		state.MarkImpossible(cell, value)
	}
	return None()
}

func (c *UniquenessConstraint) String() string {
	return fmt.Sprintf("Uniqueness(cells=%v)", c.cells)
}
