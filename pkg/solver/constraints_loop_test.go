package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a fully-fixed 2x2 grid whose segments form exactly one closed loop touching
// every cell: (0,0)=right+down, (0,1)=down+left, (1,0)=up+right, (1,1)=up+left.
func fixedLoopGrid(s *searchState) {
	fixCell(s, 0, 3)
	fixCell(s, 1, 6)
	fixCell(s, 2, 1)
	fixCell(s, 3, 4)
}

func TestSingleLoopConstraintAcceptsACompleteLoop(t *testing.T) {
	p, err := NewPuzzle(4, 0, 6)
	require.NoError(t, err)
	sl, err := NewSingleLoopConstraint(p, 2, 2)
	require.NoError(t, err)

	s := newSearchState(4, 0, 6)
	fixedLoopGrid(s)
	res := sl.Process(s)
	assert.Equal(t, ResultNone, res.Kind)
}

func TestSingleLoopConstraintRejectsBoundaryInconsistentEdge(t *testing.T) {
	p, err := NewPuzzle(4, 0, 6)
	require.NoError(t, err)
	sl, err := NewSingleLoopConstraint(p, 2, 2)
	require.NoError(t, err)

	s := newSearchState(4, 0, 6)
	// cell 0 is the top-left corner: an "up" edge has no neighbour to
	// reciprocate with.
	fixCell(s, 0, 1) // up+right
	res := sl.Process(s)
	assert.Equal(t, ResultViolation, res.Kind)
}

func TestNewSingleLoopConstraintRejectsMismatchedGridSize(t *testing.T) {
	p, err := NewPuzzle(4, 0, 6)
	require.NoError(t, err)
	_, err = NewSingleLoopConstraint(p, 3, 3)
	require.Error(t, err)
}

func TestPathConstraintAllowsAnOpenChain(t *testing.T) {
	p, err := NewPuzzle(4, 0, 6)
	require.NoError(t, err)
	pc, err := NewPathConstraint(p, 2, 2)
	require.NoError(t, err)

	s := newSearchState(4, 0, 6)
	fixedLoopGrid(s) // a closed loop is also a perfectly fine (degenerate) open path
	res := pc.Process(s)
	assert.Equal(t, ResultNone, res.Kind)
}

func TestPathConstraintRejectsBrokenReciprocation(t *testing.T) {
	p, err := NewPuzzle(4, 0, 6)
	require.NoError(t, err)
	pc, err := NewPathConstraint(p, 2, 2)
	require.NoError(t, err)

	s := newSearchState(4, 0, 6)
	fixCell(s, 0, 1) // up+right, up edge runs off the grid
	res := pc.Process(s)
	assert.Equal(t, ResultViolation, res.Kind)
}

func TestLineRuleConstraintChecksAdjacentReciprocation(t *testing.T) {
	p, err := NewPuzzle(4, 0, 6)
	require.NoError(t, err)
	lr, err := NewLineRuleConstraint(p, 2, 2, []int{0, 1})
	require.NoError(t, err)

	s := newSearchState(4, 0, 6)
	fixCell(s, 0, 3) // right+down: has a right edge
	fixCell(s, 1, 6) // down+left: has a left edge, reciprocates
	res := lr.Process(s)
	assert.Equal(t, ResultNone, res.Kind)
}

func TestLineRuleConstraintViolatesOnMismatch(t *testing.T) {
	p, err := NewPuzzle(4, 0, 6)
	require.NoError(t, err)
	lr, err := NewLineRuleConstraint(p, 2, 2, []int{0, 1})
	require.NoError(t, err)

	s := newSearchState(4, 0, 6)
	fixCell(s, 0, 3) // right+down: has a right edge
	fixCell(s, 1, 2) // up+down: no left edge, does not reciprocate
	res := lr.Process(s)
	assert.Equal(t, ResultViolation, res.Kind)
}
