package entitlement

import "github.com/toonsmith/charactergen/pkg/billing"

// Reason explains an entitlement decision to the user.
type Reason string

const (
	// ReasonHasCredits means included credits remain.
	ReasonHasCredits Reason = "has_credits"
	// ReasonOverageAllowed means credits are exhausted but the plan bills
	// additional generations per use.
	ReasonOverageAllowed Reason = "overage_allowed"
	// ReasonExhausted means credits are gone and the plan does not allow
	// overage; the user must upgrade to continue.
	ReasonExhausted Reason = "exhausted"
)

// Decision is the allow/deny result for a metered generation.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Evaluate derives the entitlement decision from a billing snapshot.
func Evaluate(state billing.BillingState) Decision {
	if state.CreditsRemaining > 0 {
		return Decision{Allowed: true, Reason: ReasonHasCredits}
	}
	if state.OverageAllowed {
		return Decision{Allowed: true, Reason: ReasonOverageAllowed}
	}
	return Decision{Allowed: false, Reason: ReasonExhausted}
}

// Message returns the paywall subtext for a decision.
func Message(d Decision) string {
	if d.Allowed {
		return "Choose the plan that best fits your needs"
	}
	return "You're out of credits. Please upgrade to continue."
}
