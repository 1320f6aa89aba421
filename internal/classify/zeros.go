package classify

import (
	"regexp"
	"strings"
)

// reZoneParts splits a zone-shaped token into prefix, digit run, and
// whatever trails the digits. The trailing group is deliberately greedy:
// anything after the digit run counts as a suffix.
var reZoneParts = regexp.MustCompile(`(?i)^([a-z]{3})([0-9]{1,4})(.*)$`)

// padWidth is the digit-run length a suffix-free zone code is padded to.
// Four-digit runs are accepted unchanged but never produced by padding.
const padWidth = 3

// AddZeros left-pads the digit run of a zone code with zeros to three
// digits. Tokens with a trailing suffix are returned unchanged: the suffix
// marks user-supplied precision that padding would corrupt. Tokens that do
// not look like a zone code at all are returned unchanged. Idempotent.
func AddZeros(t string) string {
	m := reZoneParts.FindStringSubmatch(t)
	if m == nil {
		return t
	}
	prefix, digits, suffix := m[1], m[2], m[3]
	if suffix != "" {
		return t
	}
	if len(digits) >= padWidth {
		return t
	}
	return prefix + strings.Repeat("0", padWidth-len(digits)) + digits
}
