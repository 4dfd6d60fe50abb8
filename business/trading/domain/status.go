// Package domain contains the trading aggregates (Swap, Liquidity) and
// the operation lifecycle state machine they share.
package domain

// Status is the lifecycle state of a trading operation.
// Pending → Executing → {Success | Failed}; Success and Failed are
// terminal.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusExecuting Status = "EXECUTING"
	StatusSuccess   Status = "SUCCESS"
	StatusFailed    Status = "FAILED"
)

// transitions encodes the only legal state changes.
var transitions = map[Status][]Status{
	StatusPending:   {StatusExecuting},
	StatusExecuting: {StatusSuccess, StatusFailed},
	StatusSuccess:   {},
	StatusFailed:    {},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}
