// Package engine is the top-level entry point of the reconciler: raw pasted
// text in, canonical three-column text out. It owns no presentation; the
// hosting CLI or UI supplies a signal sink and decides how warnings and the
// terminal failure are shown.
package engine

import (
	"errors"
	"strings"

	"zoneremap/internal/detect"
	"zoneremap/internal/sanitize"
)

// ErrNoRows is returned when the full cascade, fallback included, produced
// zero rows. No partial output accompanies it.
var ErrNoRows = errors.New("no valid rows recognized")

// Engine reconciles one paste per call. The zero value is usable: tab
// delimiter, discard sink.
type Engine struct {
	// Delimiter joins the three columns of each output line. Empty means tab.
	Delimiter string
	// Sink receives non-fatal detection signals. Nil means discard.
	Sink detect.Sink
}

// Result is a successful reconciliation: the rows in output order and the
// name of the strategy that claimed the input.
type Result struct {
	Rows     []detect.Row
	Strategy string
}

// Run sanitizes raw input, runs the detection cascade, and returns the
// recognized rows. Synchronous and pure: one invocation, one result.
func (e *Engine) Run(raw string) (Result, error) {
	sink := e.Sink
	if sink == nil {
		sink = detect.NopSink{}
	}
	rows, strategy := detect.Detect(sanitize.Lines(raw), sink)
	if len(rows) == 0 {
		return Result{}, ErrNoRows
	}
	return Result{Rows: rows, Strategy: strategy}, nil
}

// Reconcile runs the cascade and renders the canonical output text:
// one CONTRACT, ZONE_OLD, ZONE_NEW line per row, delimiter-joined, lines
// joined by newline.
func (e *Engine) Reconcile(raw string) (string, error) {
	res, err := e.Run(raw)
	if err != nil {
		return "", err
	}
	return e.Format(res.Rows), nil
}

// Format renders rows with the engine's delimiter.
func (e *Engine) Format(rows []detect.Row) string {
	delim := e.Delimiter
	if delim == "" {
		delim = "\t"
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.Contract + delim + r.ZoneOld + delim + r.ZoneNew
	}
	return strings.Join(lines, "\n")
}
