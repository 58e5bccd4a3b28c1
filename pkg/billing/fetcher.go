package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/toonsmith/charactergen/pkg/catalog"
	"github.com/toonsmith/charactergen/pkg/identity"
)

// StateFetcher reduces the provider's raw billing state to a BillingState
// snapshot for the signed-in subject.
//
// Every subject is subscribed to the free plan on signup and usage is
// tracked for a single pricing metric, so exactly one active subscription
// and exactly one usage record are expected. Anything else means an upstream
// data-model assumption broke and Fetch fails with ErrInvariantViolation
// instead of silently picking a record.
type StateFetcher struct {
	provider Provider
	catalog  *catalog.Catalog
	session  identity.SessionSource
	log      *slog.Logger
}

// FetcherOption configures a StateFetcher.
type FetcherOption func(*StateFetcher)

// WithLogger sets the logger used to record invariant violations distinctly
// from routine transport faults. Nil loggers are ignored.
func WithLogger(log *slog.Logger) FetcherOption {
	return func(f *StateFetcher) {
		if log != nil {
			f.log = log
		}
	}
}

// NewStateFetcher creates a StateFetcher.
// Panics if any required dependency is nil to fail fast during initialization.
func NewStateFetcher(provider Provider, cat *catalog.Catalog, session identity.SessionSource, opts ...FetcherOption) *StateFetcher {
	if provider == nil {
		panic("billing: Provider is required")
	}
	if cat == nil {
		panic("billing: Catalog is required")
	}
	if session == nil {
		panic("billing: SessionSource is required")
	}

	f := &StateFetcher{
		provider: provider,
		catalog:  cat,
		session:  session,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves a fresh point-in-time snapshot for the current session.
// Snapshots are never mutated in place; call Fetch again after any plan
// change or usage event. Fetch performs no automatic retries.
func (f *StateFetcher) Fetch(ctx context.Context) (*BillingState, error) {
	subjectID, ok := f.session.Subject()
	if !ok {
		return nil, identity.ErrNoSession
	}
	if _, ok := f.session.SessionToken(); !ok {
		return nil, identity.ErrNoSession
	}

	raw, err := f.provider.RetrieveBillingState(ctx, subjectID)
	if err != nil {
		if errors.Is(err, ErrBillingUnavailable) {
			return nil, err
		}
		return nil, errors.Join(ErrBillingUnavailable, err)
	}

	if n := len(raw.ActiveSubscriptions); n != 1 {
		f.log.ErrorContext(ctx, "billing data invariant broken",
			slog.String("invariant", "single_active_subscription"),
			slog.String("subject_id", subjectID),
			slog.Int("count", n))
		return nil, errors.Join(ErrInvariantViolation,
			fmt.Errorf("expected exactly one active subscription, got %d", n))
	}
	if n := len(raw.UsageData); n != 1 {
		f.log.ErrorContext(ctx, "billing data invariant broken",
			slog.String("invariant", "single_usage_record"),
			slog.String("subject_id", subjectID),
			slog.Int("count", n))
		return nil, errors.Join(ErrInvariantViolation,
			fmt.Errorf("expected exactly one usage record, got %d", n))
	}

	sub := raw.ActiveSubscriptions[0]
	usage := raw.UsageData[0]

	overageAllowed, err := f.catalog.OverageAllowed(sub.RateCardID)
	if err != nil {
		return nil, err
	}

	return &BillingState{
		SubscriptionID:       sub.SubscriptionID,
		SubscribedRateCardID: sub.RateCardID,
		CreditsRemaining:     usage.IncludedUnits - int64(usage.UsedUnits),
		OverageAllowed:       overageAllowed,
	}, nil
}
