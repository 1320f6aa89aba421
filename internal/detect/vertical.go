package detect

import (
	"strings"

	"zoneremap/internal/classify"
)

// This file recognizes the "three stacked columns" paste: all contracts,
// then all old zones, then all new zones, pasted as independent columns.
// Three strategies are tried in order; first success wins. The whole
// detector declines if any non-blank line holds more than one token, since
// a line with internal whitespace cannot come from a single-column paste.

func detectVertical(lines []string) (columns, bool) {
	for _, ln := range lines {
		if ln != "" && strings.ContainsAny(ln, " \t") {
			return columns{}, false
		}
	}
	if cols, ok := splitBlankSeparated(lines); ok {
		return cols, true
	}
	cols, ok, aborted := scanPhases(lines)
	if ok {
		return cols, true
	}
	if aborted {
		// A token the scan could not place means the input is not a
		// vertical paste; the remaining strategy must not second-guess it.
		return columns{}, false
	}
	return sliceThirds(lines)
}

// blockPerms enumerates the six ways three pasted groups can map onto
// (contracts, old zones, new zones).
var blockPerms = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// splitBlankSeparated groups lines on blank separators. Exactly three
// groups are required; the groups may have been pasted in any relative
// order, so every permutation of class assignment is tried and the first
// fully classified one is accepted.
func splitBlankSeparated(lines []string) (columns, bool) {
	var groups [][]string
	var cur []string
	for _, ln := range lines {
		if ln == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, ln)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	if len(groups) != 3 {
		return columns{}, false
	}

	for _, p := range blockPerms {
		if allClass(groups[p[0]], classify.ClassContract) &&
			allClass(groups[p[1]], classify.ClassOldZone) &&
			allClass(groups[p[2]], classify.ClassNewZone) {
			return columns{
				contracts: groups[p[0]],
				oldZones:  groups[p[1]],
				newZones:  groups[p[2]],
			}, true
		}
	}
	return columns{}, false
}

func allClass(tokens []string, c classify.Class) bool {
	for _, t := range tokens {
		if !classify.Is(t, c) {
			return false
		}
	}
	return true
}

// Phases of the streaming scan, forward-only.
type phase int

const (
	phaseContracts phase = iota
	phaseOldZones
	phaseNewZones
)

// scanPhases handles a vertical paste without blank separators. A single
// forward pass assigns tokens to the current phase; the first token
// matching the next phase's class advances the phase, provided the current
// bucket is non-empty. A token matching neither sets aborted, which kills
// the whole vertical detector rather than just this strategy.
func scanPhases(lines []string) (cols columns, ok, aborted bool) {
	tokens := nonBlank(lines)
	if len(tokens) < 6 {
		return columns{}, false, false
	}

	state := phaseContracts
	for _, t := range tokens {
		switch state {
		case phaseContracts:
			switch {
			case classify.IsContract(t):
				cols.contracts = append(cols.contracts, t)
			case classify.IsOldZone(t) && len(cols.contracts) > 0:
				state = phaseOldZones
				cols.oldZones = append(cols.oldZones, t)
			default:
				return columns{}, false, true
			}
		case phaseOldZones:
			switch {
			case classify.IsOldZone(t):
				cols.oldZones = append(cols.oldZones, t)
			case classify.IsNewZone(t) && len(cols.oldZones) > 0:
				state = phaseNewZones
				cols.newZones = append(cols.newZones, t)
			default:
				return columns{}, false, true
			}
		case phaseNewZones:
			if !classify.IsNewZone(t) {
				return columns{}, false, true
			}
			cols.newZones = append(cols.newZones, t)
		}
	}

	if len(cols.contracts) == 0 || len(cols.oldZones) == 0 || len(cols.newZones) == 0 {
		return columns{}, false, false
	}
	return cols, true, false
}

// sliceThirds splits the flat token list into three equal contiguous
// slices in document order and accepts only a clean
// contracts / old zones / new zones layout.
func sliceThirds(lines []string) (columns, bool) {
	tokens := nonBlank(lines)
	if len(tokens) < 6 || len(tokens)%3 != 0 {
		return columns{}, false
	}
	third := len(tokens) / 3
	cols := columns{
		contracts: tokens[:third],
		oldZones:  tokens[third : 2*third],
		newZones:  tokens[2*third:],
	}
	if !allClass(cols.contracts, classify.ClassContract) ||
		!allClass(cols.oldZones, classify.ClassOldZone) ||
		!allClass(cols.newZones, classify.ClassNewZone) {
		return columns{}, false
	}
	return cols, true
}

// arrangeColumns zips the three blocks by index. Unequal lengths are
// reported through the sink and truncated to the shortest block; a
// mismatch alone never fails the detection.
func arrangeColumns(cols columns, sink Sink) []Row {
	n := len(cols.contracts)
	if len(cols.oldZones) < n {
		n = len(cols.oldZones)
	}
	if len(cols.newZones) < n {
		n = len(cols.newZones)
	}
	if len(cols.contracts) != len(cols.oldZones) || len(cols.oldZones) != len(cols.newZones) {
		sink.LengthMismatch(len(cols.contracts), len(cols.oldZones), len(cols.newZones))
	}

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, Row{
			Contract: cols.contracts[i],
			ZoneOld:  classify.AddZeros(cols.oldZones[i]),
			ZoneNew:  classify.AddZeros(cols.newZones[i]),
		})
	}
	return rows
}
