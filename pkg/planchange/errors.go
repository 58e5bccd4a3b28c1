package planchange

import (
	"errors"
	"fmt"
)

var (
	// ErrNoChange indicates the selected target is the currently subscribed plan.
	ErrNoChange = errors.New("already subscribed to this plan")

	// ErrDowngradeNotSelfService indicates the selected target is a
	// downgrade, which is handled by support rather than self-service.
	ErrDowngradeNotSelfService = errors.New("downgrades are not self-service, contact support")

	// ErrChangeInFlight indicates another plan change is already being
	// confirmed or submitted on this orchestrator.
	ErrChangeInFlight = errors.New("a plan change is already in progress")
)

// ErrInvalidState indicates an operation was called in a state that does not
// permit it, e.g. Confirm without a prior Select.
type ErrInvalidState struct {
	Op    string
	State State
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("cannot %s in state %q", e.Op, e.State)
}

func newErrInvalidState(op string, state State) *ErrInvalidState {
	return &ErrInvalidState{Op: op, State: state}
}
