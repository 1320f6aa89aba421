package detect

import (
	"zoneremap/internal/classify"
	"zoneremap/internal/sanitize"
)

// mergeWrappedZones repairs the paste artifact where a two-column line had
// its zone code wrapped onto the following line. A lone token that loosely
// resembles a zone code is tab-joined back onto the previously emitted line
// when that line held exactly two tokens. One line of look-back only; blank
// lines are skipped.
func mergeWrappedZones(lines []string) []string {
	var out []string
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		tokens := sanitize.Fields(ln)
		if len(tokens) == 1 && classify.IsZoneCandidate(tokens[0]) && len(out) > 0 {
			prev := out[len(out)-1]
			if len(sanitize.Fields(prev)) == 2 {
				out[len(out)-1] = prev + "\t" + tokens[0]
				continue
			}
		}
		out = append(out, ln)
	}
	return out
}

// arrangeFreeForm extracts rows from merged lines with no acceptance
// requirement at all: lines with at least three tokens become rows, the
// rest are dropped silently. Most permissive strategy, runs last.
func arrangeFreeForm(lines []string) []Row {
	var rows []Row
	for _, ln := range lines {
		tokens := sanitize.Fields(ln)
		if len(tokens) < 3 {
			continue
		}
		rows = append(rows, rowFromTokens(tokens))
	}
	return rows
}
