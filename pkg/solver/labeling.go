package solver

import "sort"

// CellSelector picks the next unset cell to branch on. The implementation below
// is spec.md's §4.F cell-selection rule, and it is the only one the engine uses:
// newCursor always builds a MostConstrainedSelector, and SelectCell takes the
// unexported *searchState, so code outside this package cannot supply another.
// The interface shape mirrors the teacher's pluggable
// LabelingStrategy (labeling.go: FirstFailLabeling, DomainSizeLabeling,
// DegreeLabeling, LexicographicLabeling, RandomLabeling).
type CellSelector interface {
	// SelectCell returns the index of the next cell to branch on, or ok=false if
	// every cell is already fixed.
	SelectCell(s *searchState) (cell int, ok bool)
}

// MostConstrainedSelector implements spec.md's mandated heuristic: the unset cell
// with the smallest current domain (most-constrained-variable), ties broken first by
// cellPriority (if given), then by lowest cell index, then — if a randomizer seed was
// supplied — by a random permutation of the remaining ties.
type MostConstrainedSelector struct {
	priorityRank map[int]int // cell -> rank; lower rank preferred
	order        *searchOrder
}

// NewMostConstrainedSelector builds the default selector from a puzzle's
// SolverInstructions.
func NewMostConstrainedSelector(cellPriority []int, order *searchOrder) *MostConstrainedSelector {
	rank := make(map[int]int, len(cellPriority))
	for i, c := range cellPriority {
		rank[c] = i
	}
	return &MostConstrainedSelector{priorityRank: rank, order: order}
}

func (m *MostConstrainedSelector) rankOf(cell int) int {
	if r, ok := m.priorityRank[cell]; ok {
		return r
	}
	return len(m.priorityRank) + cell + 1
}

func (m *MostConstrainedSelector) SelectCell(s *searchState) (int, bool) {
	bestSize := -1
	var candidates []int
	for i, f := range s.fixed {
		if f != -1 {
			continue
		}
		size := s.domains[i].Count()
		switch {
		case bestSize == -1 || size < bestSize:
			bestSize = size
			candidates = []int{i}
		case size == bestSize:
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	sort.Slice(candidates, func(a, b int) bool {
		ra, rb := m.rankOf(candidates[a]), m.rankOf(candidates[b])
		if ra != rb {
			return ra < rb
		}
		return candidates[a] < candidates[b]
	})
	if m.order != nil && m.order.randomized() {
		// Ties only: among cells sharing the best rank, permute randomly.
		topRank := m.rankOf(candidates[0])
		end := 1
		for end < len(candidates) && m.rankOf(candidates[end]) == topRank {
			end++
		}
		if end > 1 {
			perm := m.order.rng.Perm(end)
			tied := append([]int(nil), candidates[:end]...)
			for i, p := range perm {
				candidates[i] = tied[p]
			}
		}
	}
	return candidates[0], true
}

// orderValues returns the candidates in cell's domain (as concrete values, via
// searchState.valueOf) in the order the engine should try them: value_priority
// first if present and no randomizer is set, then ascending, or a seeded random
// permutation when a randomizer is present (value_priority has no effect once a
// randomizer is set, per spec.md §4.E).
func orderValues(s *searchState, cell int, order *searchOrder) []int {
	var values []int
	s.domains[cell].Iterate(func(k int) { values = append(values, s.valueOf(k)) })

	if order != nil && order.randomized() {
		order.rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
		return values
	}

	if order != nil && order.valuePriority != nil {
		vp := *order.valuePriority
		for i, v := range values {
			if v == vp {
				values[0], values[i] = values[i], values[0]
				break
			}
		}
	}
	return values
}
