package billing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BillingState is the compact snapshot the rest of the product works with:
// one subscription, its plan, and how many metered credits are left.
// CreditsRemaining may be negative when the subject is over their included
// allotment on an overage-enabled plan.
type BillingState struct {
	SubscriptionID       string
	SubscribedRateCardID string
	CreditsRemaining     int64
	OverageAllowed       bool
}

// ActiveSubscription is a single subscription record as returned by the
// billing provider.
type ActiveSubscription struct {
	SubscriptionID string `json:"subscription_id"`
	RateCardID     string `json:"rate_card_id"`
}

// UsageRecord is a single usage-tracking record for one pricing metric.
type UsageRecord struct {
	IncludedUnits int64     `json:"included_units"`
	UsedUnits     UnitCount `json:"used_units"`
}

// UnitCount decodes a unit counter that the provider serializes either as a
// JSON number or as a numeric string.
type UnitCount int64

func (u *UnitCount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*u = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unit count %q: %w", s, err)
	}
	*u = UnitCount(n)
	return nil
}

// CustomerBillingState is the raw provider response for a subject's billing
// state. StateFetcher reduces it to a BillingState.
type CustomerBillingState struct {
	ActiveSubscriptions []ActiveSubscription `json:"active_subscriptions"`
	UsageData           []UsageRecord        `json:"usage_data"`
}

// UpdateOutcome discriminates the two legal results of a subscription update.
type UpdateOutcome string

const (
	// OutcomeSuccess means the plan change was applied synchronously.
	OutcomeSuccess UpdateOutcome = "success"
	// OutcomeCheckoutRequired means the provider needs the user to complete
	// an external checkout before the change takes effect.
	OutcomeCheckoutRequired UpdateOutcome = "checkout_action_required"
)

// UpdateSubscriptionResult is the tagged union returned by UpdateSubscription.
// CheckoutURL is only meaningful for OutcomeCheckoutRequired.
type UpdateSubscriptionResult struct {
	Outcome     UpdateOutcome
	CheckoutURL string
}

// UpdateSubscriptionRequest carries a plan-change submission. The callback
// URLs are where the checkout page returns the user after payment or
// cancellation; completion of a redirected checkout is observed only via the
// success callback re-entering the app.
type UpdateSubscriptionRequest struct {
	SubscriptionID string
	NewRateCardID  string
	SuccessURL     string
	CancelURL      string
}

// PortalSession is a hand-off to the provider's self-service billing
// management surface. Opaque to this product.
type PortalSession struct {
	URL string `json:"url"`
}

var _ json.Unmarshaler = (*UnitCount)(nil)
