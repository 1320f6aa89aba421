package detect

import (
	"zoneremap/internal/classify"
	"zoneremap/internal/sanitize"
)

// detectSingleLineBulk handles one giant line carrying every token as flat
// repeating triples (contract, old zone, new zone, ...). Purely positional:
// once the count is a positive multiple of three, no class checking is
// applied.
func detectSingleLineBulk(lines []string) ([]Row, bool) {
	nb := nonBlank(lines)
	if len(nb) != 1 {
		return nil, false
	}
	tokens := sanitize.Fields(nb[0])
	if len(tokens) == 0 || len(tokens)%3 != 0 {
		return nil, false
	}

	rows := make([]Row, 0, len(tokens)/3)
	for i := 0; i < len(tokens); i += 3 {
		rows = append(rows, Row{
			Contract: tokens[i],
			ZoneOld:  classify.AddZeros(tokens[i+1]),
			ZoneNew:  classify.AddZeros(tokens[i+2]),
		})
	}
	return rows, true
}

// detectRowwise handles the common case of one record per line. Position 0
// is the contract, position 1 the old zone, and the last token the new
// zone; extra middle tokens are ignored. Acceptance is all-or-nothing: a
// single line under three tokens declines the whole input so the merge
// fallback can try instead.
func detectRowwise(lines []string) ([]Row, bool) {
	nb := nonBlank(lines)
	if len(nb) == 0 {
		return nil, false
	}
	rows := make([]Row, 0, len(nb))
	for _, ln := range nb {
		tokens := sanitize.Fields(ln)
		if len(tokens) < 3 {
			return nil, false
		}
		rows = append(rows, rowFromTokens(tokens))
	}
	return rows, true
}

// rowFromTokens maps a ≥3 token line to a Row: first, second, last.
func rowFromTokens(tokens []string) Row {
	return Row{
		Contract: tokens[0],
		ZoneOld:  classify.AddZeros(tokens[1]),
		ZoneNew:  classify.AddZeros(tokens[len(tokens)-1]),
	}
}
