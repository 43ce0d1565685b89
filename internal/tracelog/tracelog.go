// Package tracelog provides the structured propagation/search tracing used by
// SolverInstructions' debug knobs (bulk_logging_file, show_continuous_progress).
// It wraps github.com/sirupsen/logrus the way
// operator-framework/operator-lifecycle-manager wires logrus through its
// controllers: a single *logrus.Logger configured once, with per-event fields
// rather than formatted strings.
package tracelog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Tracer emits structured trace events for one search. A disabled Tracer (the
// common case) discards everything at negligible cost.
type Tracer struct {
	log             *logrus.Logger
	file            *os.File
	continuousDepth bool
}

// Disabled returns a Tracer that discards all output.
func Disabled() *Tracer {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Tracer{log: l}
}

// New builds a Tracer from a caller-supplied logger (or a discarding default),
// optionally also mirroring output to bulkLoggingFile, and recording whether
// continuous per-round progress should be logged.
func New(base *logrus.Logger, bulkLoggingFile string, showContinuousProgress bool) *Tracer {
	t := &Tracer{continuousDepth: showContinuousProgress}
	if base != nil {
		t.log = base
	} else {
		t.log = logrus.New()
		t.log.SetOutput(io.Discard)
	}
	if bulkLoggingFile == "" {
		return t
	}
	f, err := os.OpenFile(bulkLoggingFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.log.WithError(err).WithField("file", bulkLoggingFile).Warn("tracelog: could not open bulk logging file")
		return t
	}
	t.file = f
	if base == nil {
		// The trace events are Debug level; the default logger's Info level
		// would drop every one of them before they reached the file.
		t.log.SetLevel(logrus.DebugLevel)
	}
	t.log.SetOutput(io.MultiWriter(t.log.Out, f))
	return t
}

// Close releases the bulk logging file, if one was opened.
func (t *Tracer) Close() error {
	if t.file == nil {
		return nil
	}
	return t.file.Close()
}

// Propagate logs one constraint's effect during a propagation round.
func (t *Tracer) Propagate(round int, constraintKind string, kind int) {
	t.log.WithFields(logrus.Fields{
		"round":      round,
		"constraint": constraintKind,
		"result":     kind,
	}).Debug("propagation step")
}

// Placed logs a cell being fixed, either by promotion or by search branching.
func (t *Tracer) Placed(cell, value int, bySearch bool) {
	t.log.WithFields(logrus.Fields{
		"cell":      cell,
		"value":     value,
		"bySearch":  bySearch,
	}).Debug("cell placed")
}

// Backtrack logs the engine abandoning a branch.
func (t *Tracer) Backtrack(cell, value int) {
	t.log.WithFields(logrus.Fields{"cell": cell, "value": value}).Debug("backtrack")
}

// Progress logs the current partial state up to a requested depth, when
// continuous progress reporting is enabled.
func (t *Tracer) Progress(depth int, describe func() string) {
	if !t.continuousDepth {
		return
	}
	t.log.WithField("depth", depth).Debug(describe())
}

// IntendedSolutionRuledOut logs that a constraint eliminated a value the caller
// declared as part of their intended solution — almost always a sign of a bug in
// either the puzzle's constraints or the intended solution itself.
func (t *Tracer) IntendedSolutionRuledOut(cell, value int, constraintKind string) {
	t.log.WithFields(logrus.Fields{
		"cell":       cell,
		"value":      value,
		"constraint": constraintKind,
	}).Warn("constraint ruled out a value from the intended solution")
}
