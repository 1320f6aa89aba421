package detect

// Row is one reconciled record: a contract identifier and its old and new
// zone codes. Zone fields have already been through padding normalization
// by the time a Row exists.
type Row struct {
	Contract string
	ZoneOld  string
	ZoneNew  string
}

// columns holds the three blocks recovered from a vertical paste, already
// reordered so each slice matches its name regardless of paste order.
type columns struct {
	contracts []string
	oldZones  []string
	newZones  []string
}

// Sink receives non-fatal signals raised during detection. The caller
// decides presentation; detection never writes output itself.
type Sink interface {
	// LengthMismatch reports unequal vertical block lengths. Detection
	// proceeds with the shortest length; this is a warning, not a failure.
	LengthMismatch(contracts, oldZones, newZones int)
}

// NopSink discards all signals.
type NopSink struct{}

func (NopSink) LengthMismatch(_, _, _ int) {}

// nonBlank returns the non-empty lines in order. Input lines are assumed
// sanitized, so blank means empty string.
func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
