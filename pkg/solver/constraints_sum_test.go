package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumConstraintForcesLastCell(t *testing.T) {
	p, err := NewPuzzle(3, 1, 9)
	require.NoError(t, err)
	sc, err := NewSumConstraint(p, 10, []int{0, 1, 2})
	require.NoError(t, err)

	s := newSearchState(3, 1, 9)
	fixCell(s, 0, 3)
	fixCell(s, 1, 4)

	res := sc.Process(s)
	assert.Equal(t, ResultReplace, res.Kind)
	assert.Empty(t, res.New)
	require.True(t, s.domains[2].IsSingleton())
	assert.True(t, s.IsPossible(2, 3))
}

func TestSumConstraintViolatesOnOverflow(t *testing.T) {
	p, err := NewPuzzle(3, 1, 9)
	require.NoError(t, err)
	sc, err := NewSumConstraint(p, 5, []int{0, 1, 2})
	require.NoError(t, err)

	s := newSearchState(3, 1, 9)
	s.MustBe(0, 9)
	s.MustBe(1, 9)
	s.MustBe(2, 9)

	res := sc.Process(s)
	assert.Equal(t, ResultViolation, res.Kind)
}

func TestSumConstraintPrunesInfeasibleValues(t *testing.T) {
	p, err := NewPuzzle(2, 1, 9)
	require.NoError(t, err)
	sc, err := NewSumConstraint(p, 4, []int{0, 1})
	require.NoError(t, err)

	s := newSearchState(2, 1, 9)
	res := sc.Process(s)
	assert.Equal(t, ResultNone, res.Kind)
	// cell 0 can be at most 3 (since cell 1 must be >= 1).
	assert.False(t, s.IsPossible(0, 9))
	assert.True(t, s.IsPossible(0, 3))
}

func TestMinSumConstraintDissolvesWhenGuaranteed(t *testing.T) {
	p, err := NewPuzzle(2, 5, 9)
	require.NoError(t, err)
	msc, err := NewMinSumConstraint(p, 10, []int{0, 1})
	require.NoError(t, err)

	s := newSearchState(2, 5, 9)
	res := msc.Process(s)
	assert.Equal(t, ResultReplace, res.Kind)
}

func TestMaxSumConstraintViolatesWhenMinExceedsLimit(t *testing.T) {
	p, err := NewPuzzle(2, 5, 9)
	require.NoError(t, err)
	msc, err := NewMaxSumConstraint(p, 9, []int{0, 1})
	require.NoError(t, err)

	s := newSearchState(2, 5, 9)
	res := msc.Process(s)
	assert.Equal(t, ResultViolation, res.Kind)
}

func TestSumAlternativeConstraintReducesToOneGroup(t *testing.T) {
	p, err := NewPuzzle(4, 1, 9)
	require.NoError(t, err)
	sac, err := NewSumAlternativeConstraint(p, 15, [][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	s := newSearchState(4, 1, 9)
	s.MustBe(2, 1)
	s.MustBe(3, 1)
	// group {2,3} is fixed at sum 2, infeasible for target 15; group {0,1} survives.
	res := sac.Process(s)
	require.Equal(t, ResultReplace, res.Kind)
	require.Len(t, res.New, 1)
	_, ok := res.New[0].(*SumConstraint)
	assert.True(t, ok)
}

func TestSumAlternativeConstraintViolatesWhenAllGroupsInfeasible(t *testing.T) {
	p, err := NewPuzzle(2, 1, 9)
	require.NoError(t, err)
	sac, err := NewSumAlternativeConstraint(p, 100, [][]int{{0}, {1}})
	require.NoError(t, err)

	s := newSearchState(2, 1, 9)
	res := sac.Process(s)
	assert.Equal(t, ResultViolation, res.Kind)
}

func TestEqualSumsConstraintConvergesToSingleValue(t *testing.T) {
	p, err := NewPuzzle(4, 1, 9)
	require.NoError(t, err)
	esc, err := NewEqualSumsConstraint(p, [][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	s := newSearchState(4, 1, 9)
	s.MustBe(0, 4)
	s.MustBe(1, 5)
	// region {0,1} sums to exactly 9, forcing region {2,3} to also sum to 9.
	res := esc.Process(s)
	require.Equal(t, ResultReplace, res.Kind)
	require.Len(t, res.New, 2)
}

func TestEqualSumsConstraintViolatesOnDisjointRanges(t *testing.T) {
	p, err := NewPuzzle(2, 1, 9)
	require.NoError(t, err)
	esc, err := NewEqualSumsConstraint(p, [][]int{{0}, {1}})
	require.NoError(t, err)

	s := newSearchState(2, 1, 9)
	s.MustBe(0, 1)
	s.MustBe(1, 9)
	res := esc.Process(s)
	assert.Equal(t, ResultViolation, res.Kind)
}
