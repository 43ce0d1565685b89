package solver

// Stats reports search effort for one Cursor, supplemental to the core
// specification (grounded on the teacher's SolverMonitor in fd_monitor.go: nodes
// visited, backtrack count, propagation rounds, peak depth). Useful for tuning
// puzzle generators; the engine's correctness does not depend on it.
type Stats struct {
	NodesVisited      int
	Backtracks        int
	PropagationRounds int
	SolutionsFound    int
	PeakDepth         int
}
