package attack

import (
	"time"

	"github.com/cracklab-io/attacksim/lib/stats"
)

// Outcome is the final disposition of an attack run.
type Outcome string

// Terminal outcomes. Every attack ends in exactly one of these.
const (
	// OutcomeFound means a candidate's digest matched the target.
	OutcomeFound Outcome = "found"
	// OutcomeExhausted means the candidate source ran out without a match.
	OutcomeExhausted Outcome = "exhausted"
	// OutcomeStopped means the run ended early, by request or by worker failure.
	OutcomeStopped Outcome = "stopped"
)

// ProgressEvent is a periodic snapshot emitted while an attack runs. Delivery
// is best effort: events are dropped rather than ever blocking the worker.
type ProgressEvent struct {
	AttackID      string  `json:"attack_id"`
	Attempts      uint64  `json:"attempts"`
	LastCandidate string  `json:"last_candidate"`
	Percent       float64 `json:"percent"` // -1 when the search space is unknown.
}

// TerminalEvent is emitted exactly once when an attack reaches a terminal
// state. Delivery is guaranteed: the event is buffered before the attack's
// done channel closes.
type TerminalEvent struct {
	AttackID   string                 `json:"attack_id"`
	Outcome    Outcome                `json:"outcome"`
	Password   string                 `json:"password,omitempty"` // Set only for OutcomeFound.
	Attempts   uint64                 `json:"attempts"`
	Elapsed    time.Duration          `json:"elapsed"`
	Throughput float64                `json:"throughput"`
	Err        string                 `json:"error,omitempty"` // Set when a worker failure forced the stop.
	Resources  stats.ResourceSnapshot `json:"resources"`
}
