package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toonsmith/charactergen/pkg/billing"
	"github.com/toonsmith/charactergen/pkg/entitlement"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		creditsRemaining int64
		overageAllowed   bool
		wantAllowed      bool
		wantReason       entitlement.Reason
	}{
		{"credits remaining", 3, false, true, entitlement.ReasonHasCredits},
		{"credits remaining with overage", 3, true, true, entitlement.ReasonHasCredits},
		{"single credit left", 1, false, true, entitlement.ReasonHasCredits},
		{"exhausted without overage", 0, false, false, entitlement.ReasonExhausted},
		{"exhausted with overage", 0, true, true, entitlement.ReasonOverageAllowed},
		{"over allotment with overage", -3, true, true, entitlement.ReasonOverageAllowed},
		{"over allotment without overage", -3, false, false, entitlement.ReasonExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := entitlement.Evaluate(billing.BillingState{
				SubscriptionID:       "sub_1",
				SubscribedRateCardID: "rc_x",
				CreditsRemaining:     tt.creditsRemaining,
				OverageAllowed:       tt.overageAllowed,
			})

			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantReason, d.Reason)
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	allowed := entitlement.Decision{Allowed: true, Reason: entitlement.ReasonHasCredits}
	assert.Equal(t, "Choose the plan that best fits your needs", entitlement.Message(allowed))

	denied := entitlement.Decision{Allowed: false, Reason: entitlement.ReasonExhausted}
	assert.Equal(t, "You're out of credits. Please upgrade to continue.", entitlement.Message(denied))
}
