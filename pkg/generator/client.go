package generator

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

	"github.com/google/uuid"
)

// Client is the wire-level interface to the generation API.
type Client interface {
	// Generate produces company characters for the given YC company URL.
	Generate(ctx context.Context, companyURL, token string) (*GenerationResult, error)

	// GetByID re-fetches a previously produced generation. The API is the
	// source of truth when the local stash misses.
	GetByID(ctx context.Context, id, token string) (*GenerationResult, error)
}

// Config holds configuration for the generation API client.
type Config struct {
	BaseURL string `env:"GENERATION_API_BASE_URL" envDefault:"http://localhost:8001"`
}

// HTTPClient implements Client over the generation API's HTTP surface.
type HTTPClient struct {
	config Config
	client *http.Client
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithHTTPClient overrides the underlying HTTP client. Nil clients are ignored.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *HTTPClient) {
		if client != nil {
			c.client = client
		}
	}
}

// NewHTTPClient creates a generation API client.
// Generations can take tens of seconds, so the default timeout is generous.
func NewHTTPClient(config Config, opts ...ClientOption) (*HTTPClient, error) {
	if config.BaseURL == "" {
		return nil, errors.New("generation API base URL is required")
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	c := &HTTPClient{
		config: config,
		client: &http.Client{Timeout: 90 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Generate(ctx context.Context, companyURL, token string) (*GenerationResult, error) {
	payload, err := json.Marshal(map[string]string{"company_url": companyURL})
	if err != nil {
		return nil, errors.Join(ErrActionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/api/company_characters", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Join(ErrActionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, token)
}

func (c *HTTPClient) GetByID(ctx context.Context, id, token string) (*GenerationResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.config.BaseURL+"/api/company_characters/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, errors.Join(ErrActionFailed, err)
	}

	return c.do(req, token)
}

func (c *HTTPClient) do(req *http.Request, token string) (*GenerationResult, error) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrActionFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrActionFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrActionFailed, errorDetail(body, resp.StatusCode))
	}

	var envelope struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Join(ErrActionFailed, fmt.Errorf("decode response: %w", err))
	}
	if envelope.ID == "" {
		return nil, errors.Join(ErrActionFailed, errors.New("response is missing generation id"))
	}

	return &GenerationResult{ID: envelope.ID, Payload: json.RawMessage(body)}, nil
}

// errorDetail extracts the server's error detail, falling back to a generic
// message when the response body is unparsable.
func errorDetail(body []byte, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return fmt.Sprintf("request failed with status %d", status)
	}
	return payload.Detail
}
