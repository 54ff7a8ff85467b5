package types

// Outcome is the typed result of a window or desktop operation. Unknown ids
// and rejected gestures are outcomes, not errors.
type Outcome string

const (
	// OutcomeApplied means state changed as requested
	OutcomeApplied Outcome = "applied"
	// OutcomeUnchanged means the request was valid but already satisfied
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeMissing means the referenced id does not exist
	OutcomeMissing Outcome = "missing"
	// OutcomeClamped means state changed after clamping to a constraint
	OutcomeClamped Outcome = "clamped"
	// OutcomeConflict means a competing gesture already owns the device
	OutcomeConflict Outcome = "conflict"
	// OutcomeRejected means the request does not apply to the current state
	OutcomeRejected Outcome = "rejected"
)

// Changed reports whether state was mutated
func (o Outcome) Changed() bool {
	return o == OutcomeApplied || o == OutcomeClamped
}

// Success reports whether the request was honoured
func (o Outcome) Success() bool {
	return o.Changed() || o == OutcomeUnchanged
}
