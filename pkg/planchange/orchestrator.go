package planchange

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/toonsmith/charactergen/pkg/billing"
	"github.com/toonsmith/charactergen/pkg/catalog"
)

// State is the orchestrator's position in the upgrade flow.
type State string

const (
	StateIdle       State = "idle"
	StateConfirming State = "confirming"
	StateSubmitting State = "submitting"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// OutcomeType discriminates how a confirmed upgrade completed.
type OutcomeType string

const (
	// OutcomeApplied means the provider applied the change synchronously.
	// The caller must re-fetch the billing snapshot; the one it holds is stale.
	OutcomeApplied OutcomeType = "applied"
	// OutcomeRedirected means the user was handed to an external checkout
	// page. The flow completes when they return via the success callback.
	OutcomeRedirected OutcomeType = "redirected_for_checkout"
)

// Outcome is the result of a confirmed upgrade submission.
type Outcome struct {
	Type        OutcomeType
	CheckoutURL string // set for OutcomeRedirected
}

// PendingChange is the upgrade awaiting user confirmation.
type PendingChange struct {
	SubscriptionID   string
	TargetRateCardID string
	PlanName         string
}

// Orchestrator runs one plan change at a time against the billing provider.
type Orchestrator struct {
	catalog  *catalog.Catalog
	provider billing.Provider
	redirect func(checkoutURL string)
	applied  func(ctx context.Context)
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	pending *PendingChange
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCheckoutRedirect sets the hook that hands control to the external
// checkout page. The orchestrator does not poll for checkout completion.
func WithCheckoutRedirect(fn func(checkoutURL string)) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.redirect = fn
		}
	}
}

// WithAppliedHook sets the hook invoked after a synchronously applied change,
// typically to re-fetch the billing snapshot and surface the success
// acknowledgment. The previously held snapshot is never patched in place.
func WithAppliedHook(fn func(ctx context.Context)) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.applied = fn
		}
	}
}

// WithLogger sets the orchestrator's logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// NewOrchestrator creates an Orchestrator in StateIdle.
// Panics if any required dependency is nil to fail fast during initialization.
func NewOrchestrator(cat *catalog.Catalog, provider billing.Provider, opts ...Option) *Orchestrator {
	if cat == nil {
		panic("planchange: Catalog is required")
	}
	if provider == nil {
		panic("planchange: billing.Provider is required")
	}

	o := &Orchestrator{
		catalog:  cat,
		provider: provider,
		redirect: func(string) {},
		applied:  func(context.Context) {},
		log:      slog.New(slog.DiscardHandler),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current flow state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Pending returns the change awaiting confirmation, if any.
func (o *Orchestrator) Pending() (PendingChange, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending == nil {
		return PendingChange{}, false
	}
	return *o.pending, true
}

// Select classifies the target plan against the current snapshot and, for an
// upgrade, moves to Confirming. Selecting the current plan or a downgrade is
// rejected here, before the billing provider is ever involved. A finished or
// failed flow starts over from scratch; only an in-flight change blocks a
// new selection. Returns the target plan for the confirmation prompt.
func (o *Orchestrator) Select(state billing.BillingState, targetRateCardID string) (catalog.Plan, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateConfirming, StateSubmitting:
		return catalog.Plan{}, ErrChangeInFlight
	}

	change, err := o.catalog.Classify(state.SubscribedRateCardID, targetRateCardID)
	if err != nil {
		return catalog.Plan{}, err
	}

	switch change {
	case catalog.ChangeNone:
		return catalog.Plan{}, ErrNoChange
	case catalog.ChangeDowngrade:
		return catalog.Plan{}, ErrDowngradeNotSelfService
	}

	plan, err := o.catalog.Lookup(targetRateCardID)
	if err != nil {
		return catalog.Plan{}, err
	}

	o.pending = &PendingChange{
		SubscriptionID:   state.SubscriptionID,
		TargetRateCardID: targetRateCardID,
		PlanName:         plan.Name,
	}
	o.state = StateConfirming
	return plan, nil
}

// Cancel abandons the pending change: Confirming -> Idle, no side effects.
func (o *Orchestrator) Cancel() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateConfirming {
		return newErrInvalidState("cancel", o.state)
	}
	o.pending = nil
	o.state = StateIdle
	return nil
}

// Confirm submits the pending change: Confirming -> Submitting -> Done or
// Failed. successURL and cancelURL are where the checkout page returns the
// user; pass the current page URL with SuccessCallbackURL applied.
//
// Resubmitting the same change after a failure is safe: the provider treats
// it as a brand-new request and no local de-duplication key is kept.
func (o *Orchestrator) Confirm(ctx context.Context, successURL, cancelURL string) (Outcome, error) {
	o.mu.Lock()
	if o.state != StateConfirming {
		state := o.state
		o.mu.Unlock()
		return Outcome{}, newErrInvalidState("confirm", state)
	}
	pending := *o.pending
	o.state = StateSubmitting
	o.mu.Unlock()

	result, err := o.provider.UpdateSubscription(ctx, billing.UpdateSubscriptionRequest{
		SubscriptionID: pending.SubscriptionID,
		NewRateCardID:  pending.TargetRateCardID,
		SuccessURL:     successURL,
		CancelURL:      cancelURL,
	})
	if err != nil {
		o.fail(ctx, pending, err)
		return Outcome{}, err
	}

	switch result.Outcome {
	case billing.OutcomeSuccess:
		o.finish(StateDone)
		o.applied(ctx)
		return Outcome{Type: OutcomeApplied}, nil

	case billing.OutcomeCheckoutRequired:
		if result.CheckoutURL == "" {
			err := errors.Join(billing.ErrMalformedResponse,
				errors.New("checkout required but no checkout URL returned"))
			o.fail(ctx, pending, err)
			return Outcome{}, err
		}
		o.finish(StateDone)
		o.redirect(result.CheckoutURL)
		return Outcome{Type: OutcomeRedirected, CheckoutURL: result.CheckoutURL}, nil

	default:
		err := errors.Join(billing.ErrMalformedResponse,
			errors.New("unknown update subscription outcome"))
		o.fail(ctx, pending, err)
		return Outcome{}, err
	}
}

// Reset returns the orchestrator to Idle after a completed or failed flow so
// the user can start over. The retry is an entirely new flow; no partial
// state is resumed.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateDone, StateFailed:
		o.pending = nil
		o.state = StateIdle
		return nil
	default:
		return newErrInvalidState("reset", o.state)
	}
}

func (o *Orchestrator) finish(state State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = nil
	o.state = state
}

func (o *Orchestrator) fail(ctx context.Context, pending PendingChange, err error) {
	o.log.ErrorContext(ctx, "plan change submission failed",
		slog.String("subscription_id", pending.SubscriptionID),
		slog.String("target_rate_card_id", pending.TargetRateCardID),
		slog.Any("error", err))

	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateFailed
}
