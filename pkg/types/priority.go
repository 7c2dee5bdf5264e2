package types

import "strings"

// Priority weighs a task's importance and drives its display color.
type Priority string

// Recognized priority values.
const (
	PriorityHigh Priority = "high"
	PriorityMed  Priority = "med"
	PriorityLow  Priority = "low"
	PriorityNone Priority = "none"
)

// validPriorities is the set of recognized priority values.
var validPriorities = map[Priority]bool{
	PriorityHigh: true,
	PriorityMed:  true,
	PriorityLow:  true,
	PriorityNone: true,
}

// ParsePriority converts free text into a Priority. Matching is
// case-insensitive and ignores surrounding whitespace; unrecognized
// text falls back to PriorityMed.
func ParsePriority(s string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !validPriorities[p] {
		return PriorityMed
	}
	return p
}

// String returns the canonical lowercase form, used for both display
// and serialization.
func (p Priority) String() string {
	if !validPriorities[p] {
		return string(PriorityMed)
	}
	return string(p)
}

// UnmarshalText normalizes any serialized value through ParsePriority,
// so unrecognized stored values decode as med instead of failing.
func (p *Priority) UnmarshalText(text []byte) error {
	*p = ParsePriority(string(text))
	return nil
}

// MarshalText renders the canonical lowercase form.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
