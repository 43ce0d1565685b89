package solver

import "fmt"

// Path-segment direction bits, per the glossary's encoding: cell values 0-6
// each designate which subset of {Up, Right, Down, Left} edges of that cell
// carry a path.
const (
	edgeUp = 1 << iota
	edgeRight
	edgeDown
	edgeLeft
)

// segmentEdges maps a cell's value (0-6) to the direction bits it realises.
// Index 0 (empty) carries no edges; indices 1-6 each carry exactly two,
// matching the glossary's path-segment table.
var segmentEdges = [7]int{
	0:                 0,
	1:                 edgeUp | edgeRight,
	2:                 edgeUp | edgeDown,
	3:                 edgeRight | edgeDown,
	4:                 edgeUp | edgeLeft,
	5:                 edgeRight | edgeLeft,
	6:                 edgeDown | edgeLeft,
}

var oppositeEdge = map[int]int{edgeUp: edgeDown, edgeDown: edgeUp, edgeLeft: edgeRight, edgeRight: edgeLeft}

func neighbourInDirection(width, height, cell, dir int) (int, bool) {
	row, col := cell/width, cell%width
	switch dir {
	case edgeUp:
		if row == 0 {
			return 0, false
		}
		return gridIndex(width, row-1, col), true
	case edgeDown:
		if row == height-1 {
			return 0, false
		}
		return gridIndex(width, row+1, col), true
	case edgeLeft:
		if col == 0 {
			return 0, false
		}
		return gridIndex(width, row, col-1), true
	case edgeRight:
		if col == width-1 {
			return 0, false
		}
		return gridIndex(width, row, col+1), true
	}
	return 0, false
}

// unionFind is a minimal disjoint-set structure used by the path-genre
// constraints to track which cells' segments are already joined into one
// chain, so a closure can be detected as soon as it happens rather than only
// once every cell is fixed.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	uf.parent[ra] = rb
	return true
}

// linkedNeighbours walks every fixed cell's realised edges, checking that the
// neighbour on the far side of each edge reciprocates with the opposite edge
// (a broken half-edge is an inconsistent, unreachable path and a violation).
// It returns the confirmed links as (cell, neighbour) pairs, each reported
// once.
func linkedNeighbours(state StateView, width, height, n int) (links [][2]int, ok bool) {
	for cell := 0; cell < n; cell++ {
		v, fixed := state.Value(cell)
		if !fixed {
			continue
		}
		edges := segmentEdges[v]
		for _, dir := range []int{edgeUp, edgeRight, edgeDown, edgeLeft} {
			if edges&dir == 0 {
				continue
			}
			nb, exists := neighbourInDirection(width, height, cell, dir)
			if !exists {
				return nil, false
			}
			nbVal, nbFixed := state.Value(nb)
			if !nbFixed {
				continue
			}
			if segmentEdges[nbVal]&oppositeEdge[dir] == 0 {
				return nil, false
			}
			if dir != edgeUp && dir != edgeLeft {
				continue // each link reported once, from its higher-indexed endpoint
			}
			links = append(links, [2]int{cell, nb})
		}
	}
	return links, true
}

// SingleLoopConstraint requires that, once every cell's path-segment value is
// fixed, the realised edges form exactly one closed, non-crossing loop (§4.D,
// glossary "Loop-closure"). It rejects a sub-loop closing prematurely while
// other path segments remain, and rejects neighbours whose edges don't
// reciprocate.
type SingleLoopConstraint struct {
	width, height int
}

func NewSingleLoopConstraint(p *Puzzle, width, height int) (*SingleLoopConstraint, error) {
	if err := checkGridDims("NewSingleLoopConstraint", width, height); err != nil {
		return nil, err
	}
	if width*height != p.n {
		return nil, fmt.Errorf("NewSingleLoopConstraint: grid %dx%d does not match %d cells: %w", width, height, p.n, ErrLengthMismatch)
	}
	return &SingleLoopConstraint{width: width, height: height}, nil
}

func (c *SingleLoopConstraint) AffectedCells() ([]int, bool) { return nil, true }

func (c *SingleLoopConstraint) Process(state StateView) Result {
	n := c.width * c.height
	links, consistent := linkedNeighbours(state, c.width, c.height, n)
	if !consistent {
		return Violation()
	}

	uf := newUnionFind(n)
	closedAt := -1
	for _, link := range links {
		if !uf.union(link[0], link[1]) {
			closedAt = link[0]
		}
	}
	if closedAt == -1 {
		return None()
	}

	// A union step found both endpoints already joined: some component closed
	// into a cycle. That is only legal if it is the *entire* loop — i.e. no
	// other cell is fixed to a nonzero segment, and no unfixed cell's domain
	// still allows one.
	for cell := 0; cell < n; cell++ {
		if v, fixed := state.Value(cell); fixed {
			if v != 0 && uf.find(cell) != uf.find(closedAt) {
				return Violation()
			}
			continue
		}
		canBeNonzero := false
		state.Possible(cell, func(v int) {
			if v != 0 {
				canBeNonzero = true
			}
		})
		if canBeNonzero {
			return Violation()
		}
	}
	return None()
}

func (c *SingleLoopConstraint) String() string { return fmt.Sprintf("SingleLoop(%dx%d)", c.width, c.height) }

// PathConstraint is SingleLoopConstraint's open-path relative (§4.D,
// "expressible as tight specialisations of the above"): it enforces the same
// half-edge reciprocity between neighbours, but never requires the path to
// close into a loop.
type PathConstraint struct {
	width, height int
}

func NewPathConstraint(p *Puzzle, width, height int) (*PathConstraint, error) {
	if err := checkGridDims("NewPathConstraint", width, height); err != nil {
		return nil, err
	}
	if width*height != p.n {
		return nil, fmt.Errorf("NewPathConstraint: grid %dx%d does not match %d cells: %w", width, height, p.n, ErrLengthMismatch)
	}
	return &PathConstraint{width: width, height: height}, nil
}

func (c *PathConstraint) AffectedCells() ([]int, bool) { return nil, true }

func (c *PathConstraint) Process(state StateView) Result {
	_, consistent := linkedNeighbours(state, c.width, c.height, c.width*c.height)
	if !consistent {
		return Violation()
	}
	return None()
}

func (c *PathConstraint) String() string { return fmt.Sprintf("Path(%dx%d)", c.width, c.height) }

// LineRuleConstraint enforces half-edge reciprocity along one specific
// ordered chain of cells, rather than across a whole grid (§4.D; the
// restricted form used by clue-cell rules in path-genre puzzles such as
// Yajilin and Castle Wall).
type LineRuleConstraint struct {
	width, height int
	cells         []int
}

func NewLineRuleConstraint(p *Puzzle, width, height int, cells []int) (*LineRuleConstraint, error) {
	if err := checkGridDims("NewLineRuleConstraint", width, height); err != nil {
		return nil, err
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("NewLineRuleConstraint: need at least two cells: %w", ErrEmptyCellList)
	}
	for _, cell := range cells {
		if err := p.checkCell("NewLineRuleConstraint", cell); err != nil {
			return nil, err
		}
	}
	return &LineRuleConstraint{width: width, height: height, cells: append([]int(nil), cells...)}, nil
}

func (c *LineRuleConstraint) AffectedCells() ([]int, bool) { return c.cells, false }

func (c *LineRuleConstraint) Process(state StateView) Result {
	for i := 0; i+1 < len(c.cells); i++ {
		a, b := c.cells[i], c.cells[i+1]
		va, okA := state.Value(a)
		vb, okB := state.Value(b)
		if !okA || !okB {
			continue
		}
		rowA, colA := a/c.width, a%c.width
		rowB, colB := b/c.width, b%c.width
		var dir int
		switch {
		case rowB == rowA-1 && colB == colA:
			dir = edgeUp
		case rowB == rowA+1 && colB == colA:
			dir = edgeDown
		case colB == colA-1 && rowB == rowA:
			dir = edgeLeft
		case colB == colA+1 && rowB == rowA:
			dir = edgeRight
		default:
			continue // not orthogonally adjacent; nothing to check between them
		}
		linked := segmentEdges[va]&dir != 0
		reciprocated := segmentEdges[vb]&oppositeEdge[dir] != 0
		if linked != reciprocated {
			return Violation()
		}
	}
	return None()
}

func (c *LineRuleConstraint) String() string { return fmt.Sprintf("LineRule(cells=%v)", c.cells) }
