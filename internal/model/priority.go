package model

import (
	"fmt"
	"strings"
)

// Priority ranks how important a contact is.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// PriorityConstraints is shown when a priority value cannot be parsed.
const PriorityConstraints = "Priority should be one of: high, medium, low, none"

var priorityNames = map[Priority]string{
	PriorityNone:   "NONE",
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
}

// ParsePriority parses a priority name. Matching ignores case and
// surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return PriorityNone, nil
	case "LOW":
		return PriorityLow, nil
	case "MEDIUM":
		return PriorityMedium, nil
	case "HIGH":
		return PriorityHigh, nil
	}
	return PriorityNone, newConstraintError(FieldPriority, s, PriorityConstraints)
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// MarshalText encodes the priority by name. Used by the JSON and YAML
// storage formats.
func (p Priority) MarshalText() ([]byte, error) {
	name, ok := priorityNames[p]
	if !ok {
		return nil, fmt.Errorf("invalid priority %d", int(p))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a priority name.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
