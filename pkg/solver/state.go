package solver

// StateView is the read/write facade the engine passes to constraints during
// propagation (§4.B). All writes made through a StateView during one propagation
// round are buffered and visible to subsequent constraints in the same round. A
// StateView is single-threaded: it must never be retained or used outside the
// Process call that received it.
type StateView interface {
	// Value returns the fixed value of cell i and true, or (0, false) if cell i is
	// not yet fixed.
	Value(i int) (value int, ok bool)

	// Possible calls f for every value still possible at cell i, ascending.
	Possible(i int, f func(value int))

	// IsPossible reports whether v is still a candidate for cell i.
	IsPossible(i int, v int) bool

	// LastPlaced returns the cell and value the engine most recently fixed in this
	// propagation round, and true — or (0, 0, false) on the initial round, meaning
	// "propagate from scratch."
	LastPlaced() (cell int, value int, ok bool)

	// MinValue and MaxValue report the puzzle's shared value range.
	MinValue() int
	MaxValue() int

	// MarkImpossible removes v from cell i's domain. Idempotent.
	MarkImpossible(i int, v int)

	// MarkImpossiblePred removes every value at cell i for which pred returns true.
	MarkImpossiblePred(i int, pred func(v int) bool)

	// MustBe intersects cell i's domain with {v}. If v is not currently possible
	// this empties the domain, which the engine reports as a violation.
	MustBe(i int, v int)
}

// The StateView interface above is implemented by *searchState.
var _ StateView = (*searchState)(nil)

// trailEntry records one cell's domain before a mutation, so the engine can
// restore it on backtrack. This is the "undo-log" variant the specification's
// design notes prefer over per-frame deep copies when N×W is large.
type trailEntry struct {
	cell         int
	priorDomain  Domain
	priorFixed   int // -1 if the cell was unset before this entry
	wasFixed     bool
}

// searchState is the engine's mutable working state for one search: per-cell
// domains, the parallel fixed-value array, and the undo trail (§3).
type searchState struct {
	minValue, maxValue int
	width              int
	domains            []Domain
	fixed              []int // -1 means unset
	trail              []trailEntry
	lastCell           int
	lastValue          int
	hasLast            bool
	violated           bool
}

func newSearchState(n, minValue, maxValue int) *searchState {
	width := maxValue - minValue + 1
	s := &searchState{
		minValue: minValue,
		maxValue: maxValue,
		width:    width,
		domains:  make([]Domain, n),
		fixed:    make([]int, n),
	}
	full := fullDomain(width)
	for i := range s.domains {
		s.domains[i] = full
		s.fixed[i] = -1
	}
	return s
}

func (s *searchState) offsetOf(v int) int { return v - s.minValue }
func (s *searchState) valueOf(k int) int  { return k + s.minValue }

func (s *searchState) Value(i int) (int, bool) {
	if s.fixed[i] == -1 {
		return 0, false
	}
	return s.fixed[i], true
}

func (s *searchState) Possible(i int, f func(value int)) {
	s.domains[i].Iterate(func(k int) { f(s.valueOf(k)) })
}

func (s *searchState) IsPossible(i int, v int) bool {
	if v < s.minValue || v > s.maxValue {
		return false
	}
	return s.domains[i].Has(s.offsetOf(v))
}

func (s *searchState) LastPlaced() (int, int, bool) {
	return s.lastCell, s.lastValue, s.hasLast
}

func (s *searchState) MinValue() int { return s.minValue }
func (s *searchState) MaxValue() int { return s.maxValue }

// snapshot returns the current trail length, a checkpoint restore can rewind to.
func (s *searchState) snapshot() int { return len(s.trail) }

// restore undoes every trail entry recorded since mark.
func (s *searchState) restore(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		e := s.trail[i]
		s.domains[e.cell] = e.priorDomain
		if e.wasFixed {
			s.fixed[e.cell] = e.priorFixed
		} else {
			s.fixed[e.cell] = -1
		}
	}
	s.trail = s.trail[:mark]
	s.violated = false
}

// record pushes an undo entry for cell i's current (about-to-change) state.
func (s *searchState) record(i int) {
	s.trail = append(s.trail, trailEntry{
		cell:        i,
		priorDomain: s.domains[i],
		priorFixed:  s.fixed[i],
		wasFixed:    s.fixed[i] != -1,
	})
}

func (s *searchState) setEmpty(i int) {
	if s.domains[i].IsEmpty() {
		s.violated = true
	}
}

func (s *searchState) MarkImpossible(i int, v int) {
	if v < s.minValue || v > s.maxValue {
		return
	}
	k := s.offsetOf(v)
	if !s.domains[i].Has(k) {
		return
	}
	s.record(i)
	s.domains[i] = s.domains[i].Remove(k)
	s.setEmpty(i)
}

func (s *searchState) MarkImpossiblePred(i int, pred func(v int) bool) {
	next := s.domains[i].FilterPred(func(k int) bool { return pred(s.valueOf(k)) })
	if next.Equal(s.domains[i]) {
		return
	}
	s.record(i)
	s.domains[i] = next
	s.setEmpty(i)
}

func (s *searchState) MustBe(i int, v int) {
	if v < s.minValue || v > s.maxValue {
		s.record(i)
		s.domains[i] = emptyDomain()
		s.violated = true
		return
	}
	k := s.offsetOf(v)
	single := singletonDomain(k)
	if s.domains[i].Equal(single) {
		return
	}
	s.record(i)
	s.domains[i] = s.domains[i].Intersect(single)
	s.setEmpty(i)
}
