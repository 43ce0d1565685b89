package solver

// ResultKind distinguishes the three outcomes a constraint can report from
// Process (§4.C).
type ResultKind int

const (
	// ResultNone means the constraint remains in force unchanged. It may have
	// written narrowing eliminations to the StateView before returning.
	ResultNone ResultKind = iota

	// ResultReplace means the engine should remove this constraint from the active
	// set and substitute New in its place. An empty New means "now fully satisfied."
	ResultReplace

	// ResultViolation means the current partial assignment cannot be extended; the
	// engine must backtrack.
	ResultViolation
)

// Result is the tagged union a Constraint's Process method returns.
type Result struct {
	Kind ResultKind
	New  []Constraint // meaningful only when Kind == ResultReplace
}

// None is the "no-op, constraint remains in force" result.
func None() Result { return Result{Kind: ResultNone} }

// Violation is the "partial assignment cannot be extended" result.
func Violation() Result { return Result{Kind: ResultViolation} }

// Replace is the "I am now equivalent to these simpler constraints" result.
// Passing no constraints means the constraint has fully dissolved.
func Replace(cs ...Constraint) Result { return Result{Kind: ResultReplace, New: cs} }

// Constraint is the contract every member of the constraint library implements
// (§4.C). A constraint's Process method is a pure function of the StateView plus
// its own fields fixed at construction time; any mutation happens only through the
// StateView.
type Constraint interface {
	// AffectedCells returns the ordered cell indices this constraint observes, and
	// whether it is a wildcard (the list is then not authoritative). When
	// wildcard is true the constraint may
	// read any cell and is re-invoked on every placement ("Wildcard" affected-cells,
	// §9 design notes) rather than only when one of its own cells changes.
	AffectedCells() (cells []int, wildcard bool)

	// Process narrows state's domains, reports a replacement constraint set, or
	// reports a violation, given the current partial assignment. Consult
	// state.LastPlaced to find the cell most recently fixed by the engine, which is
	// unset on the initial propagation round for this search branch.
	Process(state StateView) Result
}
