package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlwaysTrueConstraintNeverNarrowsOrViolates(t *testing.T) {
	c := NewAlwaysTrueConstraint([]int{0, 1, 2})
	s := newSearchState(3, 1, 5)
	before := append([]Domain(nil), s.domains...)

	res := c.Process(s)
	assert.Equal(t, ResultNone, res.Kind)
	assert.Equal(t, before, s.domains)

	cells, wildcard := c.AffectedCells()
	assert.Equal(t, []int{0, 1, 2}, cells)
	assert.False(t, wildcard)
}

func TestAlwaysTrueConstraintString(t *testing.T) {
	c := NewAlwaysTrueConstraint(nil)
	assert.Equal(t, "AlwaysTrue", c.String())
}
