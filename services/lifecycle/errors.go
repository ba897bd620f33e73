package lifecycle

import "fmt"

// InvalidTransitionError reports an attempted transition that the state
// machine does not allow, typically out of a terminal state. The entity's
// status is left unchanged.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition: %s -> %s", e.Entity, e.From, e.To)
}

// PreconditionFailedError reports a workflow precondition that did not hold,
// e.g. accepting a proposal whose request is no longer open. Surfaced to the
// user as an actionable message; never retried automatically.
type PreconditionFailedError struct {
	Reason string
}

func (e PreconditionFailedError) Error() string {
	return "precondition failed: " + e.Reason
}
