package model

import (
	"fmt"
	"strings"
)

// Policy selects how a new word is compared against the round.
type Policy string

const (
	// PolicyExact flags a word whose full text equals a prior entry.
	PolicyExact Policy = "exact"
	// PolicyPartial flags a word sharing any sub-word unit with a prior entry.
	PolicyPartial Policy = "partial"
)

// ParsePolicy accepts the canonical names and the "easy"/"hard" mode names.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "easy":
		return PolicyExact, nil
	case "partial", "hard":
		return PolicyPartial, nil
	default:
		return "", fmt.Errorf("unknown matching policy %q", s)
	}
}

func (p Policy) Valid() bool {
	return p == PolicyExact || p == PolicyPartial
}

// State of the round-entry state machine.
type State string

const (
	StateIdle              State = "idle"
	StatePendingResolution State = "pending_resolution"
)
