// Package classify assigns lexical shape classes to sanitized tokens and
// normalizes zone-code digit padding. Classification is purely lexical:
// a token's class never depends on where it appeared in the paste.
package classify

import "regexp"

// Class is the lexical shape class of a single token.
type Class string

const (
	ClassContract Class = "contract" // 3 letters + 3 digits + "FAT" + digits, optional -digits.
	ClassOldZone  Class = "old-zone" // Exactly 3 letters + 3 digits, no suffix.
	ClassNewZone  Class = "new-zone" // 3 letters + 3 digits + "-" + digits.
	ClassUnknown  Class = "unknown"
)

// Shape patterns. Anchored and case-insensitive. OldZone and NewZone are
// mutually exclusive by construction: the suffix is forbidden in one and
// required in the other, and the embedded "FAT" keeps Contract disjoint
// from both.
var (
	reContract = regexp.MustCompile(`(?i)^[a-z]{3}[0-9]{3}fat[0-9]+(-[0-9]+)?$`)
	reOldZone  = regexp.MustCompile(`(?i)^[a-z]{3}[0-9]{3}$`)
	reNewZone  = regexp.MustCompile(`(?i)^[a-z]{3}[0-9]{3}-[0-9]+$`)

	// Loose zone candidate for the wrap-merge fallback: letters may come
	// from the Latin or Arabic script, the digit run may be 3 or 4 long,
	// and any alphanumeric dash-suffix is allowed.
	reZoneCandidate = regexp.MustCompile(`(?i)^[a-z\p{Arabic}]{3}[0-9]{3,4}(-[a-z0-9]+)?$`)
)

// IsContract reports whether t has the contract identifier shape.
func IsContract(t string) bool { return reContract.MatchString(t) }

// IsOldZone reports whether t has the suffix-free zone code shape.
func IsOldZone(t string) bool { return reOldZone.MatchString(t) }

// IsNewZone reports whether t has the dash-suffixed zone code shape.
func IsNewZone(t string) bool { return reNewZone.MatchString(t) }

// IsZoneCandidate reports whether t loosely resembles a zone code. Only the
// merge fallback uses this; the strict detectors never do.
func IsZoneCandidate(t string) bool { return reZoneCandidate.MatchString(t) }

// Classify returns the shape class of t. Contract is checked first so the
// "FAT" infix wins over a would-be zone reading of its prefix.
func Classify(t string) Class {
	switch {
	case IsContract(t):
		return ClassContract
	case IsOldZone(t):
		return ClassOldZone
	case IsNewZone(t):
		return ClassNewZone
	}
	return ClassUnknown
}

// Is reports whether t satisfies class c.
func Is(t string, c Class) bool { return Classify(t) == c }
