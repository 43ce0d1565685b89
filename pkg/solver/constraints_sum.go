package solver

import "fmt"

// cellBounds reports the smallest and largest value still possible at cell,
// or ok=false if its domain is empty (a state the engine never lets survive,
// but callers check defensively rather than panic).
func cellBounds(state StateView, cell int) (min, max int, ok bool) {
	if v, isFixed := state.Value(cell); isFixed {
		return v, v, true
	}
	min, max = state.MaxValue()+1, state.MinValue()-1
	state.Possible(cell, func(v int) {
		if !ok || v < min {
			min = v
		}
		if !ok || v > max {
			max = v
		}
		ok = true
	})
	return min, max, ok
}

func unsetAmong(state StateView, cells []int) []int {
	var unset []int
	for _, c := range cells {
		if _, isFixed := state.Value(c); !isFixed {
			unset = append(unset, c)
		}
	}
	return unset
}

func fixedSum(state StateView, cells []int) int {
	sum := 0
	for _, c := range cells {
		if v, isFixed := state.Value(c); isFixed {
			sum += v
		}
	}
	return sum
}

// SumConstraint requires the values across cells to sum to exactly target
// (§4.D). It narrows each unset cell by the bounds the other unset cells can
// still reach, forces the last unset cell outright, and dissolves once every
// cell is fixed.
type SumConstraint struct {
	target int
	cells  []int
}

// NewSumConstraint validates cells against p.
func NewSumConstraint(p *Puzzle, target int, cells []int) (*SumConstraint, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("NewSumConstraint: %w", ErrEmptyCellList)
	}
	for _, c := range cells {
		if err := p.checkCell("NewSumConstraint", c); err != nil {
			return nil, err
		}
	}
	return &SumConstraint{target: target, cells: append([]int(nil), cells...)}, nil
}

func (c *SumConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *SumConstraint) Process(state StateView) Result {
	unset := unsetAmong(state, c.cells)
	fixed := fixedSum(state, c.cells)

	if len(unset) == 0 {
		if fixed != c.target {
			return Violation()
		}
		return Replace()
	}

	if len(unset) == 1 {
		need := c.target - fixed
		state.MustBe(unset[0], need)
		return Replace()
	}

	minRestTotal, maxRestTotal := 0, 0
	bounds := make(map[int][2]int, len(unset))
	for _, cell := range unset {
		lo, hi, ok := cellBounds(state, cell)
		if !ok {
			return Violation()
		}
		bounds[cell] = [2]int{lo, hi}
		minRestTotal += lo
		maxRestTotal += hi
	}
	if fixed+minRestTotal > c.target || fixed+maxRestTotal < c.target {
		return Violation()
	}

	for _, cell := range unset {
		b := bounds[cell]
		minRest := minRestTotal - b[0]
		maxRest := maxRestTotal - b[1]
		state.MarkImpossiblePred(cell, func(v int) bool {
			return fixed+v+minRest > c.target || fixed+v+maxRest < c.target
		})
	}
	return None()
}

func (c *SumConstraint) String() string { return fmt.Sprintf("Sum(target=%d, cells=%v)", c.target, c.cells) }

// MinSumConstraint requires the values across cells to sum to at least limit
// (§4.D, "one-sided version").
type MinSumConstraint struct {
	limit int
	cells []int
}

func NewMinSumConstraint(p *Puzzle, limit int, cells []int) (*MinSumConstraint, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("NewMinSumConstraint: %w", ErrEmptyCellList)
	}
	for _, c := range cells {
		if err := p.checkCell("NewMinSumConstraint", c); err != nil {
			return nil, err
		}
	}
	return &MinSumConstraint{limit: limit, cells: append([]int(nil), cells...)}, nil
}

func (c *MinSumConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *MinSumConstraint) Process(state StateView) Result {
	unset := unsetAmong(state, c.cells)
	fixed := fixedSum(state, c.cells)

	if len(unset) == 0 {
		if fixed < c.limit {
			return Violation()
		}
		return Replace()
	}

	minRestTotal, maxRestTotal := 0, 0
	bounds := make(map[int][2]int, len(unset))
	for _, cell := range unset {
		lo, hi, ok := cellBounds(state, cell)
		if !ok {
			return Violation()
		}
		bounds[cell] = [2]int{lo, hi}
		minRestTotal += lo
		maxRestTotal += hi
	}
	if fixed+maxRestTotal < c.limit {
		return Violation()
	}
	if fixed+minRestTotal >= c.limit {
		return Replace()
	}
	for _, cell := range unset {
		b := bounds[cell]
		maxRest := maxRestTotal - b[1]
		state.MarkImpossiblePred(cell, func(v int) bool {
			return fixed+v+maxRest < c.limit
		})
	}
	return None()
}

func (c *MinSumConstraint) String() string {
	return fmt.Sprintf("MinSum(limit=%d, cells=%v)", c.limit, c.cells)
}

// MaxSumConstraint requires the values across cells to sum to at most limit
// (§4.D, "one-sided version").
type MaxSumConstraint struct {
	limit int
	cells []int
}

func NewMaxSumConstraint(p *Puzzle, limit int, cells []int) (*MaxSumConstraint, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("NewMaxSumConstraint: %w", ErrEmptyCellList)
	}
	for _, c := range cells {
		if err := p.checkCell("NewMaxSumConstraint", c); err != nil {
			return nil, err
		}
	}
	return &MaxSumConstraint{limit: limit, cells: append([]int(nil), cells...)}, nil
}

func (c *MaxSumConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *MaxSumConstraint) Process(state StateView) Result {
	unset := unsetAmong(state, c.cells)
	fixed := fixedSum(state, c.cells)

	if len(unset) == 0 {
		if fixed > c.limit {
			return Violation()
		}
		return Replace()
	}

	minRestTotal, maxRestTotal := 0, 0
	bounds := make(map[int][2]int, len(unset))
	for _, cell := range unset {
		lo, hi, ok := cellBounds(state, cell)
		if !ok {
			return Violation()
		}
		bounds[cell] = [2]int{lo, hi}
		minRestTotal += lo
		maxRestTotal += hi
	}
	if fixed+minRestTotal > c.limit {
		return Violation()
	}
	if fixed+maxRestTotal <= c.limit {
		return Replace()
	}
	for _, cell := range unset {
		b := bounds[cell]
		minRest := minRestTotal - b[0]
		state.MarkImpossiblePred(cell, func(v int) bool {
			return fixed+v+minRest > c.limit
		})
	}
	return None()
}

func (c *MaxSumConstraint) String() string {
	return fmt.Sprintf("MaxSum(limit=%d, cells=%v)", c.limit, c.cells)
}

// SumAlternativeConstraint requires the sum to equal target over some one of
// several candidate groups (§4.D). Groups are pruned as they become
// infeasible; once a single group remains the constraint reduces to a plain
// SumConstraint on it.
type SumAlternativeConstraint struct {
	target int
	groups [][]int
}

func NewSumAlternativeConstraint(p *Puzzle, target int, groups [][]int) (*SumAlternativeConstraint, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("NewSumAlternativeConstraint: %w", ErrEmptyCellList)
	}
	cp := make([][]int, len(groups))
	for gi, g := range groups {
		if len(g) == 0 {
			return nil, fmt.Errorf("NewSumAlternativeConstraint: group %d: %w", gi, ErrEmptyCellList)
		}
		for _, c := range g {
			if err := p.checkCell("NewSumAlternativeConstraint", c); err != nil {
				return nil, err
			}
		}
		cp[gi] = append([]int(nil), g...)
	}
	return &SumAlternativeConstraint{target: target, groups: cp}, nil
}

func (c *SumAlternativeConstraint) AffectedCells() ([]int, bool) {
	var all []int
	for _, g := range c.groups {
		all = append(all, g...)
	}
	return all, false
}

func groupFeasible(state StateView, target int, cells []int) bool {
	lo, hi := 0, 0
	for _, cell := range cells {
		a, b, ok := cellBounds(state, cell)
		if !ok {
			return false
		}
		lo += a
		hi += b
	}
	return lo <= target && target <= hi
}

func (c *SumAlternativeConstraint) Process(state StateView) Result {
	var survivors [][]int
	for _, g := range c.groups {
		if groupFeasible(state, c.target, g) {
			survivors = append(survivors, g)
		}
	}
	if len(survivors) == 0 {
		return Violation()
	}
	if len(survivors) == 1 {
		return Replace(newSumConstraintUnchecked(c.target, survivors[0]))
	}
	if len(survivors) == len(c.groups) {
		return None()
	}
	return Replace(&SumAlternativeConstraint{target: c.target, groups: survivors})
}

// newSumConstraintUnchecked builds a SumConstraint bypassing the public
// constructor's range validation, since cells here were already validated by
// the alternative constraint that contains them.
func newSumConstraintUnchecked(target int, cells []int) *SumConstraint {
	return &SumConstraint{target: target, cells: cells}
}

func (c *SumAlternativeConstraint) String() string {
	return fmt.Sprintf("SumAlternative(target=%d, groups=%d)", c.target, len(c.groups))
}

// EqualSumsConstraint requires every region's sum to be equal, without fixing
// what that common value is (§4.D).
type EqualSumsConstraint struct {
	regions [][]int
}

func NewEqualSumsConstraint(p *Puzzle, regions [][]int) (*EqualSumsConstraint, error) {
	if len(regions) < 2 {
		return nil, fmt.Errorf("NewEqualSumsConstraint: need at least two regions: %w", ErrInvalidRange)
	}
	cp := make([][]int, len(regions))
	for ri, r := range regions {
		if len(r) == 0 {
			return nil, fmt.Errorf("NewEqualSumsConstraint: region %d: %w", ri, ErrEmptyCellList)
		}
		for _, c := range r {
			if err := p.checkCell("NewEqualSumsConstraint", c); err != nil {
				return nil, err
			}
		}
		cp[ri] = append([]int(nil), r...)
	}
	return &EqualSumsConstraint{regions: cp}, nil
}

func (c *EqualSumsConstraint) AffectedCells() ([]int, bool) {
	var all []int
	for _, r := range c.regions {
		all = append(all, r...)
	}
	return all, false
}

func regionBounds(state StateView, cells []int) (lo, hi int, ok bool) {
	for _, cell := range cells {
		a, b, cellOK := cellBounds(state, cell)
		if !cellOK {
			return 0, 0, false
		}
		lo += a
		hi += b
	}
	return lo, hi, true
}

func (c *EqualSumsConstraint) Process(state StateView) Result {
	var lo, hi int
	first := true
	for _, r := range c.regions {
		rlo, rhi, ok := regionBounds(state, r)
		if !ok {
			return Violation()
		}
		if first {
			lo, hi = rlo, rhi
			first = false
			continue
		}
		if rlo > lo {
			lo = rlo
		}
		if rhi < hi {
			hi = rhi
		}
	}
	if lo > hi {
		return Violation()
	}
	if lo == hi {
		cs := make([]Constraint, 0, len(c.regions))
		for _, r := range c.regions {
			cs = append(cs, newSumConstraintUnchecked(lo, r))
		}
		return Replace(cs...)
	}
	return None()
}

func (c *EqualSumsConstraint) String() string { return fmt.Sprintf("EqualSums(regions=%d)", len(c.regions)) }
