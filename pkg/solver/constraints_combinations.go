package solver

import "fmt"

// TupleSlot is one position within a CombinationsConstraint tuple: either a
// concrete required value, or a wildcard that imposes no restriction at that
// position (§4.D).
type TupleSlot struct {
	Value int
	Any   bool
}

// Fixed returns a concrete tuple slot.
func Fixed(v int) TupleSlot { return TupleSlot{Value: v} }

// Wild returns a wildcard tuple slot.
func Wild() TupleSlot { return TupleSlot{Any: true} }

// Tuple is one allowed combination of values across a CombinationsConstraint's
// cells, position-aligned.
type Tuple []TupleSlot

// CombinationsConstraint restricts cells to an enumerated set of allowed
// tuples (§4.D). It is the workhorse most domain-specific clue constraints
// (Thermometer, Sandwich, Nonogram-row, Frame-sum, Yajilin, Castle-Wall,
// Skyscraper) reduce to by precomputing their tuple set.
type CombinationsConstraint struct {
	cells  []int
	tuples []Tuple
}

// NewCombinationsConstraint validates cells against p and that every tuple has
// one slot per cell.
func NewCombinationsConstraint(p *Puzzle, cells []int, tuples []Tuple) (*CombinationsConstraint, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("NewCombinationsConstraint: %w", ErrEmptyCellList)
	}
	for _, c := range cells {
		if err := p.checkCell("NewCombinationsConstraint", c); err != nil {
			return nil, err
		}
	}
	for ti, t := range tuples {
		if len(t) != len(cells) {
			return nil, fmt.Errorf("NewCombinationsConstraint: tuple %d has %d slots, want %d: %w", ti, len(t), len(cells), ErrLengthMismatch)
		}
	}
	return &CombinationsConstraint{cells: append([]int(nil), cells...), tuples: append([]Tuple(nil), tuples...)}, nil
}

func (c *CombinationsConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *CombinationsConstraint) tupleConsistent(state StateView, t Tuple) bool {
	for i, slot := range t {
		if slot.Any {
			continue
		}
		if !state.IsPossible(c.cells[i], slot.Value) {
			return false
		}
	}
	return true
}

func (c *CombinationsConstraint) Process(state StateView) Result {
	survivors := make([]Tuple, 0, len(c.tuples))
	for _, t := range c.tuples {
		if c.tupleConsistent(state, t) {
			survivors = append(survivors, t)
		}
	}
	if len(survivors) == 0 {
		return Violation()
	}
	if len(survivors) == 1 {
		for i, slot := range survivors[0] {
			if !slot.Any {
				state.MustBe(c.cells[i], slot.Value)
			}
		}
		return Replace()
	}

	for i := range c.cells {
		wildcardPresent := false
		allowed := make(map[int]bool)
		for _, t := range survivors {
			if t[i].Any {
				wildcardPresent = true
				break
			}
			allowed[t[i].Value] = true
		}
		if wildcardPresent {
			continue
		}
		cell := c.cells[i]
		state.MarkImpossiblePred(cell, func(v int) bool { return !allowed[v] })
	}

	if len(survivors) == len(c.tuples) {
		return None()
	}
	return Replace(&CombinationsConstraint{cells: c.cells, tuples: survivors})
}

func (c *CombinationsConstraint) String() string {
	return fmt.Sprintf("Combinations(cells=%v, tuples=%d)", c.cells, len(c.tuples))
}

// LessThanConstraint requires a sequence of cells to hold strictly increasing
// values (§4.D). It is semantically a CombinationsConstraint over
// strictly-increasing tuples, re-expressed with a direct bound-propagation
// implementation: forward passes push lower bounds up the chain, backward
// passes push upper bounds down.
type LessThanConstraint struct {
	cells []int
}

func NewLessThanConstraint(p *Puzzle, cells []int) (*LessThanConstraint, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("NewLessThanConstraint: need at least two cells: %w", ErrEmptyCellList)
	}
	for _, c := range cells {
		if err := p.checkCell("NewLessThanConstraint", c); err != nil {
			return nil, err
		}
	}
	return &LessThanConstraint{cells: append([]int(nil), cells...)}, nil
}

func (c *LessThanConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *LessThanConstraint) Process(state StateView) Result {
	n := len(c.cells)

	for i := 1; i < n; i++ {
		prevMin, _, ok := cellBounds(state, c.cells[i-1])
		if !ok {
			return Violation()
		}
		floor := prevMin
		state.MarkImpossiblePred(c.cells[i], func(v int) bool { return v <= floor })
	}
	for i := n - 2; i >= 0; i-- {
		_, nextMax, ok := cellBounds(state, c.cells[i+1])
		if !ok {
			return Violation()
		}
		ceil := nextMax
		state.MarkImpossiblePred(c.cells[i], func(v int) bool { return v >= ceil })
	}

	allFixed := true
	for _, cell := range c.cells {
		if _, ok := state.Value(cell); !ok {
			allFixed = false
			break
		}
	}
	if allFixed {
		prev := -1 << 31
		for _, cell := range c.cells {
			v, _ := state.Value(cell)
			if v <= prev {
				return Violation()
			}
			prev = v
		}
		return Replace()
	}
	return None()
}

func (c *LessThanConstraint) String() string { return fmt.Sprintf("LessThan(cells=%v)", c.cells) }
