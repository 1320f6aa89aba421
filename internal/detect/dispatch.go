package detect

// Strategy pairs a named shape detector with its row extraction. Strategies
// are evaluated in order by [Detect]; the first one returning a non-empty,
// fully accepted row set wins. Declining (ok == false) is normal control
// flow, not an error.
type Strategy struct {
	Name   string
	Detect func(lines []string, sink Sink) ([]Row, bool)
}

// Strategies is the ordered detection cascade. Order matters: the stricter
// shapes go first so the permissive fallback only sees input nothing else
// claimed.
var Strategies = []Strategy{
	{"vertical-blocks", func(lines []string, sink Sink) ([]Row, bool) {
		cols, ok := detectVertical(lines)
		if !ok {
			return nil, false
		}
		return arrangeColumns(cols, sink), true
	}},
	{"single-line-bulk", func(lines []string, _ Sink) ([]Row, bool) {
		return detectSingleLineBulk(lines)
	}},
	{"rowwise", func(lines []string, _ Sink) ([]Row, bool) {
		return detectRowwise(lines)
	}},
	{"wrap-merge", func(lines []string, _ Sink) ([]Row, bool) {
		return arrangeFreeForm(mergeWrappedZones(lines)), true
	}},
}

// Detect runs the cascade over sanitized lines and returns the recognized
// rows with the winning strategy's name. A nil row slice and empty name
// mean nothing was recognized; the caller owns surfacing that as failure.
func Detect(lines []string, sink Sink) ([]Row, string) {
	if sink == nil {
		sink = NopSink{}
	}
	for _, s := range Strategies {
		rows, ok := s.Detect(lines, sink)
		if ok && len(rows) > 0 {
			return rows, s.Name
		}
	}
	return nil, ""
}
