// Package sanitize cleans raw pasted text before shape detection: it
// converts non-breaking spaces to plain spaces, strips quote characters and
// bidirectional control marks, and trims surrounding whitespace. Spreadsheet
// and chat clients inject all of these invisibly, and any one of them is
// enough to make a regex shape check fail.
package sanitize

import "strings"

// quoteReplacer drops straight and curly quote characters outright.
// nbspReplacer converts the non-breaking space family to plain spaces so the
// token splitter treats them as separators.
var (
	nbspReplacer = strings.NewReplacer(
		" ", " ", // no-break space
		" ", " ", // narrow no-break space
	)
	quoteReplacer = strings.NewReplacer(
		`"`, "", "'", "",
		"‘", "", "’", "", // curly single
		"“", "", "”", "", // curly double
	)
)

// isBidiMark reports whether r is a bidirectional text control character:
// the LRM/RLM/ALM marks, the embedding/override block, or the isolate block.
func isBidiMark(r rune) bool {
	switch r {
	case '‎', '‏', '؜':
		return true
	}
	if r >= '‪' && r <= '‮' {
		return true
	}
	if r >= '⁦' && r <= '⁩' {
		return true
	}
	return false
}

// stripBidi removes bidi control marks anywhere in s. Zero-width space and
// BOM are removed too; they travel with the same copy/paste paths.
func stripBidi(s string) string {
	return strings.Map(func(r rune) rune {
		if isBidiMark(r) || r == '\u200b' || r == '\ufeff' {
			return -1
		}
		return r
	}, s)
}

// Line sanitizes one raw line: NBSP to space, quotes removed, bidi marks
// removed, then trimmed. Always succeeds; the result may be empty.
func Line(s string) string {
	s = nbspReplacer.Replace(s)
	s = quoteReplacer.Replace(s)
	s = stripBidi(s)
	return strings.TrimSpace(s)
}

// Lines splits raw input on newlines and sanitizes every line. Carriage
// returns from Windows clipboards are dropped by the trim in Line.
func Lines(raw string) []string {
	parts := strings.Split(raw, "\n")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = Line(p)
	}
	return out
}

// Fields splits a sanitized line on runs of spaces and tabs and sanitizes
// each resulting token again (a token pasted mid-line can still carry its
// own marks).
func Fields(line string) []string {
	raw := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = Line(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
