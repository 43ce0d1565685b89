package solver

import "fmt"

func collectValues(state StateView, cell int) []int {
	if v, ok := state.Value(cell); ok {
		return []int{v}
	}
	var vs []int
	state.Possible(cell, func(v int) { vs = append(vs, v) })
	return vs
}

// OneCellLambdaConstraint keeps only the values at one cell that satisfy an
// arbitrary caller-supplied predicate (§4.D). The simplest of the lambda
// family; it dissolves once its cell is fixed.
type OneCellLambdaConstraint struct {
	cell      int
	predicate func(v int) bool
	name      string
}

// NewOneCellLambdaConstraint validates cell against p. name is used only for
// diagnostics (String, logging) since predicate is opaque.
func NewOneCellLambdaConstraint(p *Puzzle, cell int, name string, predicate func(v int) bool) (*OneCellLambdaConstraint, error) {
	if predicate == nil {
		return nil, fmt.Errorf("NewOneCellLambdaConstraint: %w", ErrInvalidRange)
	}
	if err := p.checkCell("NewOneCellLambdaConstraint", cell); err != nil {
		return nil, err
	}
	return &OneCellLambdaConstraint{cell: cell, predicate: predicate, name: name}, nil
}

func (c *OneCellLambdaConstraint) AffectedCells() ([]int, bool) { return []int{c.cell}, false }

func (c *OneCellLambdaConstraint) Process(state StateView) Result {
	state.MarkImpossiblePred(c.cell, func(v int) bool { return !c.predicate(v) })
	if _, ok := state.Value(c.cell); ok {
		return Replace()
	}
	return None()
}

func (c *OneCellLambdaConstraint) String() string {
	if c.name != "" {
		return fmt.Sprintf("OneCellLambda(%s, cell=%d)", c.name, c.cell)
	}
	return fmt.Sprintf("OneCellLambda(cell=%d)", c.cell)
}

// TwoCellLambdaConstraint keeps only values at c1, c2 that participate in at
// least one jointly-satisfying assignment under current domains (§4.D).
type TwoCellLambdaConstraint struct {
	c1, c2    int
	predicate func(v1, v2 int) bool
	name      string
}

func NewTwoCellLambdaConstraint(p *Puzzle, c1, c2 int, name string, predicate func(v1, v2 int) bool) (*TwoCellLambdaConstraint, error) {
	if predicate == nil {
		return nil, fmt.Errorf("NewTwoCellLambdaConstraint: %w", ErrInvalidRange)
	}
	if err := p.checkCell("NewTwoCellLambdaConstraint", c1); err != nil {
		return nil, err
	}
	if err := p.checkCell("NewTwoCellLambdaConstraint", c2); err != nil {
		return nil, err
	}
	return &TwoCellLambdaConstraint{c1: c1, c2: c2, predicate: predicate, name: name}, nil
}

func (c *TwoCellLambdaConstraint) AffectedCells() ([]int, bool) { return []int{c.c1, c.c2}, false }

func (c *TwoCellLambdaConstraint) Process(state StateView) Result {
	v1s := collectValues(state, c.c1)
	v2s := collectValues(state, c.c2)

	ok1 := make(map[int]bool)
	ok2 := make(map[int]bool)
	for _, a := range v1s {
		for _, b := range v2s {
			if c.predicate(a, b) {
				ok1[a] = true
				ok2[b] = true
			}
		}
	}
	state.MarkImpossiblePred(c.c1, func(v int) bool { return !ok1[v] })
	state.MarkImpossiblePred(c.c2, func(v int) bool { return !ok2[v] })

	_, f1 := state.Value(c.c1)
	_, f2 := state.Value(c.c2)
	if f1 && f2 {
		return Replace()
	}
	return None()
}

func (c *TwoCellLambdaConstraint) String() string {
	if c.name != "" {
		return fmt.Sprintf("TwoCellLambda(%s, cells=%d,%d)", c.name, c.c1, c.c2)
	}
	return fmt.Sprintf("TwoCellLambda(cells=%d,%d)", c.c1, c.c2)
}

// ThreeCellLambdaConstraint is the three-cell generalisation of
// TwoCellLambdaConstraint (§4.D).
type ThreeCellLambdaConstraint struct {
	c1, c2, c3 int
	predicate  func(v1, v2, v3 int) bool
	name       string
}

func NewThreeCellLambdaConstraint(p *Puzzle, c1, c2, c3 int, name string, predicate func(v1, v2, v3 int) bool) (*ThreeCellLambdaConstraint, error) {
	if predicate == nil {
		return nil, fmt.Errorf("NewThreeCellLambdaConstraint: %w", ErrInvalidRange)
	}
	for _, c := range []int{c1, c2, c3} {
		if err := p.checkCell("NewThreeCellLambdaConstraint", c); err != nil {
			return nil, err
		}
	}
	return &ThreeCellLambdaConstraint{c1: c1, c2: c2, c3: c3, predicate: predicate, name: name}, nil
}

func (c *ThreeCellLambdaConstraint) AffectedCells() ([]int, bool) {
	return []int{c.c1, c.c2, c.c3}, false
}

func (c *ThreeCellLambdaConstraint) Process(state StateView) Result {
	v1s := collectValues(state, c.c1)
	v2s := collectValues(state, c.c2)
	v3s := collectValues(state, c.c3)

	ok1 := make(map[int]bool)
	ok2 := make(map[int]bool)
	ok3 := make(map[int]bool)
	for _, a := range v1s {
		for _, b := range v2s {
			for _, d := range v3s {
				if c.predicate(a, b, d) {
					ok1[a] = true
					ok2[b] = true
					ok3[d] = true
				}
			}
		}
	}
	state.MarkImpossiblePred(c.c1, func(v int) bool { return !ok1[v] })
	state.MarkImpossiblePred(c.c2, func(v int) bool { return !ok2[v] })
	state.MarkImpossiblePred(c.c3, func(v int) bool { return !ok3[v] })

	_, f1 := state.Value(c.c1)
	_, f2 := state.Value(c.c2)
	_, f3 := state.Value(c.c3)
	if f1 && f2 && f3 {
		return Replace()
	}
	return None()
}

func (c *ThreeCellLambdaConstraint) String() string {
	if c.name != "" {
		return fmt.Sprintf("ThreeCellLambda(%s, cells=%d,%d,%d)", c.name, c.c1, c.c2, c.c3)
	}
	return fmt.Sprintf("ThreeCellLambda(cells=%d,%d,%d)", c.c1, c.c2, c.c3)
}
