package billing

import "context"

// Provider is the wire-level client for the billing collaborator's customer
// access API. Implementations own transport concerns only; they do not
// retry, cache, or reinterpret outcomes beyond decoding the response shape.
type Provider interface {
	// RetrieveBillingState returns the subject's raw subscription and usage
	// records. Cardinality validation happens in StateFetcher, not here.
	RetrieveBillingState(ctx context.Context, subjectID string) (*CustomerBillingState, error)

	// UpdateSubscription requests a plan change for an existing subscription.
	// The provider either applies it synchronously (OutcomeSuccess) or
	// returns a checkout URL the user must visit (OutcomeCheckoutRequired).
	UpdateSubscription(ctx context.Context, req UpdateSubscriptionRequest) (*UpdateSubscriptionResult, error)

	// CreatePortalSession opens a self-service billing portal session that
	// returns the user to returnURL when done.
	CreatePortalSession(ctx context.Context, returnURL string) (*PortalSession, error)
}
