package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneCellLambdaConstraintNarrowsAndDissolves(t *testing.T) {
	p, err := NewPuzzle(1, 1, 5)
	require.NoError(t, err)
	isEven := func(v int) bool { return v%2 == 0 }
	lc, err := NewOneCellLambdaConstraint(p, 0, "even", isEven)
	require.NoError(t, err)

	s := newSearchState(1, 1, 5)
	res := lc.Process(s)
	assert.Equal(t, ResultNone, res.Kind)
	assert.False(t, s.IsPossible(0, 1))
	assert.True(t, s.IsPossible(0, 2))

	s2 := newSearchState(1, 2, 2)
	fixCell(s2, 0, 2)
	res2 := lc.Process(s2)
	assert.Equal(t, ResultReplace, res2.Kind)
}

func TestNewOneCellLambdaConstraintRejectsNilPredicate(t *testing.T) {
	p, err := NewPuzzle(1, 1, 5)
	require.NoError(t, err)
	_, err = NewOneCellLambdaConstraint(p, 0, "nil", nil)
	require.Error(t, err)
}

func TestTwoCellLambdaConstraintNarrowsJointly(t *testing.T) {
	p, err := NewPuzzle(2, 1, 3)
	require.NoError(t, err)
	lessThan := func(a, b int) bool { return a < b }
	lc, err := NewTwoCellLambdaConstraint(p, 0, 1, "lessThan", lessThan)
	require.NoError(t, err)

	s := newSearchState(2, 1, 3)
	s.MustBe(0, 3)
	res := lc.Process(s)
	// cell0=3 can never be less than anything in {1,2,3}, so cell1 has no
	// satisfying partner: the joint domain narrows to empty at cell1.
	assert.Equal(t, ResultNone, res.Kind)
	assert.True(t, s.domains[1].IsEmpty())
}

func TestTwoCellLambdaConstraintDissolvesWhenBothFixed(t *testing.T) {
	p, err := NewPuzzle(2, 1, 3)
	require.NoError(t, err)
	lessThan := func(a, b int) bool { return a < b }
	lc, err := NewTwoCellLambdaConstraint(p, 0, 1, "lessThan", lessThan)
	require.NoError(t, err)

	s := newSearchState(2, 1, 3)
	fixCell(s, 0, 1)
	fixCell(s, 1, 2)
	res := lc.Process(s)
	assert.Equal(t, ResultReplace, res.Kind)
}

func TestThreeCellLambdaConstraintDissolvesWhenAllFixed(t *testing.T) {
	p, err := NewPuzzle(3, 1, 3)
	require.NoError(t, err)
	sumTo6 := func(a, b, c int) bool { return a+b+c == 6 }
	lc, err := NewThreeCellLambdaConstraint(p, 0, 1, 2, "sumTo6", sumTo6)
	require.NoError(t, err)

	s := newSearchState(3, 1, 3)
	fixCell(s, 0, 1)
	fixCell(s, 1, 2)
	fixCell(s, 2, 3)
	res := lc.Process(s)
	assert.Equal(t, ResultReplace, res.Kind)
}
