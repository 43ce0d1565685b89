package solver

import (
	"fmt"

	"github.com/gitrdm/cellpuzzle/internal/tracelog"
)

// maxPropagationRounds bounds the fixpoint loop defensively: a constraint that
// kept replacing itself forever without ever converging would be an authoring bug
// in that constraint, not a condition the engine needs to diagnose precisely. The
// search always makes progress even under incomplete propagation (§1: "the search
// handles the rest"), so capping here and letting backtracking take over is sound.
const maxPropagationRounds = 100000

func cellsContain(cells []int, cell int) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}

// constraintRelevant reports whether c should be (re-)invoked this pass. Wildcard
// constraints and the very first pass of a round (no specific last-placed cell
// yet) always run; otherwise a cell-indexed constraint only runs when one of its
// own cells was the one just placed (§9 design notes: "Wildcard" affected-cells).
// This is a speed optimisation, not a completeness guarantee — spec.md explicitly
// does not require complete propagation.
func constraintRelevant(c Constraint, hasLast bool, lastCell int) bool {
	cells, wildcard := c.AffectedCells()
	if wildcard || !hasLast {
		return true
	}
	return cellsContain(cells, lastCell)
}

// runPass invokes every relevant active constraint once, in stable order,
// rebuilding the active list as replacements are applied. Replacement constraints
// take effect starting the *next* pass, not within this one (§4.F ordering
// guarantee).
func runPass(s *searchState, active []Constraint, tr *tracelog.Tracer) (next []Constraint, changed bool, violated bool) {
	next = make([]Constraint, 0, len(active))
	for _, c := range active {
		if !constraintRelevant(c, s.hasLast, s.lastCell) {
			next = append(next, c)
			continue
		}
		res := c.Process(s)
		if s.violated {
			tr.Propagate(0, fmt.Sprintf("%T", c), int(ResultViolation))
			return nil, true, true
		}
		switch res.Kind {
		case ResultNone:
			next = append(next, c)
		case ResultReplace:
			changed = true
			next = append(next, res.New...)
		case ResultViolation:
			tr.Propagate(0, fmt.Sprintf("%T", c), int(ResultViolation))
			return nil, true, true
		}
	}
	return next, changed, false
}

// promoteNextSingleton fixes the lowest-index unset cell whose domain has become
// a singleton (§4.F step 4's deterministic "lowest index first" rule, absent a
// randomizer — the randomizer only affects branching order, not this promotion,
// since promotion is forced rather than chosen).
func promoteNextSingleton(s *searchState) bool {
	for i, f := range s.fixed {
		if f == -1 && s.domains[i].IsSingleton() {
			v := s.valueOf(s.domains[i].SingletonOffset())
			s.trail = append(s.trail, trailEntry{cell: i, priorDomain: s.domains[i], priorFixed: -1, wasFixed: false})
			s.fixed[i] = v
			s.lastCell, s.lastValue, s.hasLast = i, v, true
			return true
		}
	}
	return false
}

// propagateToFixpoint runs constraints to a fixpoint (§4.F steps 1-5): repeated
// passes, promoting newly-determined singletons between passes, until a pass
// changes nothing and no new singleton appears.
func propagateToFixpoint(s *searchState, active []Constraint, tr *tracelog.Tracer) ([]Constraint, bool) {
	for round := 0; round < maxPropagationRounds; round++ {
		next, changed, violated := runPass(s, active, tr)
		if violated {
			return nil, true
		}
		active = next
		if promoteNextSingleton(s) {
			continue
		}
		if !changed {
			return active, false
		}
		// A replacement occurred but nothing new was promoted: give the
		// replacement constraints one full, unfiltered pass before settling.
		s.hasLast = false
	}
	return active, false
}

func (s *searchState) allFixed() bool {
	for _, f := range s.fixed {
		if f == -1 {
			return false
		}
	}
	return true
}

func (s *searchState) extractSolution() []int {
	sol := make([]int, len(s.fixed))
	copy(sol, s.fixed)
	return sol
}

// frame is one level of the engine's explicit backtracking stack — an iterative,
// resumable state machine rather than native Go recursion (§9 design notes:
// "Re-architect as explicit iterator objects with a resumable state machine").
type frame struct {
	snap   int          // trail mark to restore to before trying this frame's next value
	active []Constraint // active constraint list as of entry to this frame
	cell   int
	values []int
	idx    int
}

// Cursor is the lazy, pull-based sequence Solve returns (§4.F "Solution
// enumeration", §5). Pulling Next drives the search forward one solution at a
// time; a Cursor that is never pulled again performs no further work and can be
// dropped freely — there is no background goroutine to cancel.
type Cursor struct {
	puzzle   *Puzzle
	state    *searchState
	selector CellSelector
	order    *searchOrder
	tracer   *tracelog.Tracer
	stack    []frame

	limit      int
	emitted    int
	done       bool
	violated   bool // true if even the initial propagation failed
	solution   []int
	hasPending bool // true if a solution is ready at the root with no branching needed
	stats      Stats
}

func newCursor(p *Puzzle, instructions *SolverInstructions) *Cursor {
	state := newSearchState(p.n, p.minValue, p.maxValue)
	order := instructions.order()
	tracer := instructions.tracer()
	selector := NewMostConstrainedSelector(instructions.CellPriority, order)

	c := &Cursor{
		puzzle:   p,
		state:    state,
		selector: selector,
		order:    order,
		tracer:   tracer,
		limit:    instructions.Limit,
	}

	active, violated := propagateToFixpoint(state, append([]Constraint(nil), p.constraints...), tracer)
	c.stats.PropagationRounds++
	if violated {
		c.violated = true
		c.done = true
		return c
	}
	if state.allFixed() {
		c.hasPending = true
		c.solution = state.extractSolution()
		return c
	}
	cell, ok := selector.SelectCell(state)
	if !ok {
		// No unset cell remains yet allFixed() said otherwise: unreachable, but
		// treat defensively as "no more solutions."
		c.done = true
		return c
	}
	values := orderValues(state, cell, order)
	c.stack = append(c.stack, frame{snap: state.snapshot(), active: active, cell: cell, values: values})
	return c
}

// Next advances the cursor to the next solution, returning false once the search
// is exhausted (or the configured Limit has been reached).
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	if c.hasPending {
		c.hasPending = false
		c.emitted++
		c.stats.SolutionsFound++
		if c.limit > 0 && c.emitted >= c.limit {
			c.done = true
		}
		return true
	}

	for len(c.stack) > 0 {
		f := &c.stack[len(c.stack)-1]
		if len(c.stack) > c.stats.PeakDepth {
			c.stats.PeakDepth = len(c.stack)
		}

		if f.idx >= len(f.values) {
			c.state.restore(f.snap)
			c.stack = c.stack[:len(c.stack)-1]
			c.stats.Backtracks++
			continue
		}

		v := f.values[f.idx]
		f.idx++
		c.stats.NodesVisited++

		c.state.restore(f.snap)
		c.state.MustBe(f.cell, v)
		if c.state.violated {
			c.state.restore(f.snap)
			continue
		}
		c.state.lastCell, c.state.lastValue, c.state.hasLast = f.cell, v, true
		c.tracer.Placed(f.cell, v, true)

		newActive, violated := propagateToFixpoint(c.state, f.active, c.tracer)
		c.stats.PropagationRounds++
		if violated {
			c.state.restore(f.snap)
			continue
		}
		c.tracer.Progress(len(c.stack), func() string { return fmt.Sprint(c.state.fixed) })

		if c.state.allFixed() {
			c.solution = c.state.extractSolution()
			c.state.restore(f.snap)
			c.emitted++
			c.stats.SolutionsFound++
			if c.limit > 0 && c.emitted >= c.limit {
				c.done = true
			}
			return true
		}

		nextCell, ok := c.selector.SelectCell(c.state)
		if !ok {
			c.state.restore(f.snap)
			continue
		}
		nextValues := orderValues(c.state, nextCell, c.order)
		c.stack = append(c.stack, frame{snap: c.state.snapshot(), active: newActive, cell: nextCell, values: nextValues})
	}

	c.done = true
	return false
}

// Solution returns the solution most recently produced by Next. Its result is
// undefined before the first successful Next call or after Next returns false.
func (c *Cursor) Solution() []int { return c.solution }

// Stats reports search effort so far.
func (c *Cursor) Stats() Stats { return c.stats }

// Close releases resources held by the cursor (the propagation tracer's log
// file, if one was opened). Safe to call multiple times.
func (c *Cursor) Close() error {
	return c.tracer.Close()
}
