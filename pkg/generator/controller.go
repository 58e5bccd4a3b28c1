package generator

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sync/atomic"

	"github.com/toonsmith/charactergen/pkg/identity"
	"github.com/toonsmith/charactergen/pkg/resultstore"
)

// ycCompanyURLPattern is the external-identifier shape the generation API
// accepts, e.g. https://www.ycombinator.com/companies/lark.
var ycCompanyURLPattern = regexp.MustCompile(`^https://www\.ycombinator\.com/companies/[a-zA-Z0-9\-]+$`)

// Controller orchestrates one metered generation: input validation, session
// token, API call, result stash. At most one invocation is in flight per
// controller; a second call fails with ErrGenerationInFlight instead of
// relying on the UI to disable re-entry.
type Controller struct {
	client  Client
	session identity.SessionSource
	store   resultstore.Store
	log     *slog.Logger
	busy    atomic.Bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the controller's logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController creates a Controller.
// Panics if any required dependency is nil to fail fast during initialization.
func NewController(client Client, session identity.SessionSource, store resultstore.Store, opts ...ControllerOption) *Controller {
	if client == nil {
		panic("generator: Client is required")
	}
	if session == nil {
		panic("generator: SessionSource is required")
	}
	if store == nil {
		panic("generator: resultstore.Store is required")
	}

	c := &Controller{
		client:  client,
		session: session,
		store:   store,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateCompanyURL reports whether the input matches the accepted YC
// company URL shape.
func ValidateCompanyURL(companyURL string) bool {
	return ycCompanyURLPattern.MatchString(companyURL)
}

// Invoke runs one generation for the given company URL and returns the
// result, which is also stashed under its server-issued ID for the
// per-result view.
//
// Caller obligation: consult pkg/entitlement first and only call Invoke for
// an allowed decision. Invoke does not re-check entitlement.
func (c *Controller) Invoke(ctx context.Context, companyURL string) (*GenerationResult, error) {
	if !ValidateCompanyURL(companyURL) {
		return nil, ErrInvalidCompanyURL
	}

	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer c.busy.Store(false)

	token, ok := c.session.SessionToken()
	if !ok {
		return nil, identity.ErrNoSession
	}

	result, err := c.client.Generate(ctx, companyURL, token)
	if err != nil {
		return nil, err
	}

	// The stash is advisory; a failed write must not discard a paid-for
	// generation, so it is logged and the result still returned.
	if err := c.store.Put(ctx, result.ID, result.Payload); err != nil {
		c.log.WarnContext(ctx, "failed to stash generation result",
			slog.String("generation_id", result.ID),
			slog.Any("error", err))
	}

	return result, nil
}

// Result loads a generation by ID, preferring the local stash and falling
// back to the generation API when the entry is absent.
func (c *Controller) Result(ctx context.Context, id string) (*GenerationResult, error) {
	payload, err := c.store.Get(ctx, id)
	if err == nil {
		return &GenerationResult{ID: id, Payload: payload}, nil
	}
	if !errors.Is(err, resultstore.ErrNotFound) {
		return nil, err
	}

	token, ok := c.session.SessionToken()
	if !ok {
		return nil, identity.ErrNoSession
	}

	result, err := c.client.GetByID(ctx, id, token)
	if err != nil {
		return nil, err
	}

	if err := c.store.Put(ctx, result.ID, result.Payload); err != nil {
		c.log.WarnContext(ctx, "failed to stash generation result",
			slog.String("generation_id", result.ID),
			slog.Any("error", err))
	}

	return result, nil
}
