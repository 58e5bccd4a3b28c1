package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// LarkConfig holds configuration for the Lark billing provider.
type LarkConfig struct {
	APIKey  string `env:"LARK_PUBLIC_API_KEY,required"`
	BaseURL string `env:"LARK_BASE_URL" envDefault:"https://api.uselark.ai"`
}

// LarkProvider implements Provider against Lark's customer access API.
type LarkProvider struct {
	config LarkConfig
	client *http.Client
}

// LarkOption configures a LarkProvider.
type LarkOption func(*LarkProvider)

// WithHTTPClient overrides the HTTP client used for provider requests.
// Nil clients are ignored.
func WithHTTPClient(client *http.Client) LarkOption {
	return func(p *LarkProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// NewLarkProvider creates a Provider backed by Lark's HTTP API.
func NewLarkProvider(config LarkConfig, opts ...LarkOption) (*LarkProvider, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://api.uselark.ai"
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	p := &LarkProvider{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// RetrieveBillingState fetches the subject's active subscriptions and usage
// records from the customer access API.
func (p *LarkProvider) RetrieveBillingState(ctx context.Context, subjectID string) (*CustomerBillingState, error) {
	if subjectID == "" {
		return nil, ErrMissingSubjectID
	}

	endpoint := p.config.BaseURL + "/v1/customer_access/billing_state/" + url.PathEscape(subjectID)

	var state CustomerBillingState
	if err := p.do(ctx, http.MethodGet, endpoint, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// UpdateSubscription submits a plan change and decodes the tagged response.
// An unrecognized response discriminant is reported as ErrMalformedResponse;
// the caller decides what a checkout-required outcome without a URL means.
func (p *LarkProvider) UpdateSubscription(ctx context.Context, req UpdateSubscriptionRequest) (*UpdateSubscriptionResult, error) {
	if req.SubscriptionID == "" {
		return nil, ErrMissingSubscriptionID
	}
	if req.NewRateCardID == "" {
		return nil, ErrMissingRateCardID
	}

	endpoint := p.config.BaseURL + "/v1/subscriptions/" + url.PathEscape(req.SubscriptionID)
	body := map[string]string{
		"rate_card_id":                  req.NewRateCardID,
		"checkout_success_callback_url": req.SuccessURL,
		"checkout_cancel_callback_url":  req.CancelURL,
	}

	var resp struct {
		Type        string `json:"type"`
		CheckoutURL string `json:"checkout_url"`
	}
	if err := p.do(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, err
	}

	switch UpdateOutcome(resp.Type) {
	case OutcomeSuccess:
		return &UpdateSubscriptionResult{Outcome: OutcomeSuccess}, nil
	case OutcomeCheckoutRequired:
		return &UpdateSubscriptionResult{Outcome: OutcomeCheckoutRequired, CheckoutURL: resp.CheckoutURL}, nil
	default:
		return nil, errors.Join(ErrMalformedResponse,
			fmt.Errorf("unexpected update subscription response type %q", resp.Type))
	}
}

// CreatePortalSession opens a self-service billing portal session.
func (p *LarkProvider) CreatePortalSession(ctx context.Context, returnURL string) (*PortalSession, error) {
	endpoint := p.config.BaseURL + "/v1/portal_sessions"
	body := map[string]string{"return_url": returnURL}

	var session PortalSession
	if err := p.do(ctx, http.MethodPost, endpoint, body, &session); err != nil {
		return nil, err
	}
	if session.URL == "" {
		return nil, errors.Join(ErrMalformedResponse, errors.New("no portal URL returned"))
	}
	return &session, nil
}

// do executes one API request. All transport, status and decode failures are
// folded into ErrBillingUnavailable; retries are the user's explicit action,
// never automatic.
func (p *LarkProvider) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrBillingUnavailable, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Join(ErrBillingUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Join(ErrBillingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Join(ErrBillingUnavailable,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, apiErrorDetail(resp.Body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrBillingUnavailable, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// apiErrorDetail extracts the provider's error detail from a failed response
// body, falling back to a generic message when the body is unparsable.
func apiErrorDetail(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil || payload.Detail == "" {
		return "billing request failed"
	}
	return payload.Detail
}
