package solver

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/gitrdm/cellpuzzle/internal/tracelog"
)

// Puzzle owns the cell count, value range, constraint list, and optional given
// assignments for one constraint-propagation problem (§4.E). The engine never
// mutates a Puzzle; Solve builds a fresh search from it on every call.
type Puzzle struct {
	n                  int
	minValue, maxValue int
	constraints        []Constraint
	colour             map[int]string // cell -> colour name; read only by external pretty-printers
}

// NewPuzzle constructs an empty puzzle of n cells, each drawing values from
// [minValue, maxValue]. It returns ErrInvalidRange if minValue > maxValue, and
// ErrDomainTooWide if the range does not fit the engine's bitset width.
func NewPuzzle(n, minValue, maxValue int) (*Puzzle, error) {
	if minValue > maxValue {
		return nil, fmt.Errorf("NewPuzzle: %w", ErrInvalidRange)
	}
	if maxValue-minValue+1 > maxDomainWidth {
		return nil, fmt.Errorf("NewPuzzle: width %d: %w", maxValue-minValue+1, ErrDomainTooWide)
	}
	return &Puzzle{n: n, minValue: minValue, maxValue: maxValue}, nil
}

// N returns the cell count.
func (p *Puzzle) N() int { return p.n }

// MinValue and MaxValue report the puzzle's shared value range.
func (p *Puzzle) MinValue() int { return p.minValue }
func (p *Puzzle) MaxValue() int { return p.maxValue }

// checkCell validates a cell index is in range, wrapping ErrCellOutOfRange with the
// caller-supplied context for a useful construction-time error.
func (p *Puzzle) checkCell(context string, cell int) error {
	if cell < 0 || cell >= p.n {
		return fmt.Errorf("%s: cell %d: %w", context, cell, ErrCellOutOfRange)
	}
	return nil
}

func (p *Puzzle) checkValue(context string, v int) error {
	if v < p.minValue || v > p.maxValue {
		return fmt.Errorf("%s: value %d: %w", context, v, ErrValueOutOfRange)
	}
	return nil
}

// AddConstraint appends one constraint to the puzzle.
func (p *Puzzle) AddConstraint(c Constraint) {
	p.constraints = append(p.constraints, c)
}

// AddConstraints appends several constraints to the puzzle.
func (p *Puzzle) AddConstraints(cs ...Constraint) {
	p.constraints = append(p.constraints, cs...)
}

// SetColour records a cell->colour association used only by external
// pretty-printers; the engine never reads it.
func (p *Puzzle) SetColour(cell int, colour string) {
	if p.colour == nil {
		p.colour = make(map[int]string)
	}
	p.colour[cell] = colour
}

// Colour returns the colour previously set for cell, or "" if none.
func (p *Puzzle) Colour(cell int) string {
	return p.colour[cell]
}

// searchOrder bundles the randomizer/priority knobs the engine consults when
// choosing cells and values (§4.E, §4.F).
type searchOrder struct {
	rng           *rand.Rand
	valuePriority *int
	hasSeed       bool
}

func (o *searchOrder) randomized() bool { return o != nil && o.hasSeed }

// SolverInstructions configures one Solve call (§4.E). The zero value means
// canonical, deterministic iteration with no debug output.
type SolverInstructions struct {
	// Randomizer, when non-nil, seeds deterministic randomised cell/value
	// iteration order. When nil, iteration is canonical.
	Randomizer *int64

	// CellPriority is an ordered list of cell indices the engine should prefer
	// when choosing the next unset cell, softly (ties only).
	CellPriority []int

	// ValuePriority, when non-nil, is the value to try first within each cell; it
	// has no effect when Randomizer is set.
	ValuePriority *int

	// Limit caps the number of solutions Solve will enumerate before stopping; 0
	// means unbounded.
	Limit int

	// ShowContinuousProgress enables debug logging of the current partial state
	// (the fixed value of every cell, -1 where unset) after each successful
	// propagation during the search, with the search depth as a field.
	ShowContinuousProgress bool

	// IntendedSolution is a full N-length assignment in [MinValue, MaxValue]. The
	// engine does not read it: setting it changes neither the search nor the
	// trace, and no check against the active constraints is made.
	IntendedSolution []int

	// ExamineConstraint is a filter over constraints for use with
	// IntendedSolution. The engine does not read it either.
	ExamineConstraint func(Constraint) bool

	// BulkLoggingFile, when non-empty, receives the Debug-level propagation and
	// placement trace. Without a Logger the trace goes to this file only.
	BulkLoggingFile string

	// Logger receives the structured trace output, whose events are logged at
	// Debug level, so a Logger set to a higher level drops them. When nil, the
	// output is discarded unless BulkLoggingFile is set.
	Logger *logrus.Logger
}

func (si *SolverInstructions) order() *searchOrder {
	o := &searchOrder{valuePriority: si.ValuePriority}
	if si.Randomizer != nil {
		o.rng = rand.New(rand.NewSource(*si.Randomizer))
		o.hasSeed = true
	}
	return o
}

func (si *SolverInstructions) tracer() *tracelog.Tracer {
	if si == nil {
		return tracelog.Disabled()
	}
	return tracelog.New(si.Logger, si.BulkLoggingFile, si.ShowContinuousProgress)
}

// Solve returns a Cursor that lazily enumerates every assignment of values to
// cells satisfying every constraint (§4.F). Pulling the cursor drives the search;
// ceasing to pull cancels it (§5). A nil instructions argument is equivalent to
// &SolverInstructions{}.
func (p *Puzzle) Solve(instructions *SolverInstructions) *Cursor {
	if instructions == nil {
		instructions = &SolverInstructions{}
	}
	return newCursor(p, instructions)
}
