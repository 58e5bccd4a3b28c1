package billing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonsmith/charactergen/pkg/billing"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *billing.LarkProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := billing.NewLarkProvider(billing.LarkConfig{
		APIKey:  "pk_test",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return provider
}

func TestNewLarkProvider(t *testing.T) {
	t.Parallel()

	_, err := billing.NewLarkProvider(billing.LarkConfig{})
	assert.ErrorIs(t, err, billing.ErrMissingAPIKey)
}

func TestLarkRetrieveBillingState(t *testing.T) {
	t.Parallel()

	t.Run("decodes state with string unit counts", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/customer_access/billing_state/user_1", r.URL.Path)
			assert.Equal(t, "Bearer pk_test", r.Header.Get("Authorization"))

			// The provider serializes used_units as a string.
			w.Write([]byte(`{
				"active_subscriptions": [{"subscription_id": "sub_1", "rate_card_id": "rc_starter"}],
				"usage_data": [{"included_units": 25, "used_units": "7"}]
			}`))
		})

		state, err := provider.RetrieveBillingState(context.Background(), "user_1")
		require.NoError(t, err)
		require.Len(t, state.ActiveSubscriptions, 1)
		assert.Equal(t, "sub_1", state.ActiveSubscriptions[0].SubscriptionID)
		require.Len(t, state.UsageData, 1)
		assert.EqualValues(t, 25, state.UsageData[0].IncludedUnits)
		assert.EqualValues(t, 7, state.UsageData[0].UsedUnits)
	})

	t.Run("decodes numeric unit counts", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{
				"active_subscriptions": [{"subscription_id": "sub_1", "rate_card_id": "rc_free"}],
				"usage_data": [{"included_units": 5, "used_units": 2}]
			}`))
		})

		state, err := provider.RetrieveBillingState(context.Background(), "user_1")
		require.NoError(t, err)
		assert.EqualValues(t, 2, state.UsageData[0].UsedUnits)
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(http.ResponseWriter, *http.Request) {})
		_, err := provider.RetrieveBillingState(context.Background(), "")
		assert.ErrorIs(t, err, billing.ErrMissingSubjectID)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"detail":"customer not found"}`, http.StatusNotFound)
		})

		_, err := provider.RetrieveBillingState(context.Background(), "user_1")
		assert.ErrorIs(t, err, billing.ErrBillingUnavailable)
		assert.ErrorContains(t, err, "customer not found")
	})

	t.Run("garbage body", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		})

		_, err := provider.RetrieveBillingState(context.Background(), "user_1")
		assert.ErrorIs(t, err, billing.ErrBillingUnavailable)
	})
}

func TestLarkUpdateSubscription(t *testing.T) {
	t.Parallel()

	req := billing.UpdateSubscriptionRequest{
		SubscriptionID: "sub_1",
		NewRateCardID:  "rc_premium",
		SuccessURL:     "https://app.example/plans?upgrade_success=true",
		CancelURL:      "https://app.example/plans",
	}

	t.Run("synchronous success", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/subscriptions/sub_1", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "rc_premium", body["rate_card_id"])
			assert.Equal(t, req.SuccessURL, body["checkout_success_callback_url"])
			assert.Equal(t, req.CancelURL, body["checkout_cancel_callback_url"])

			w.Write([]byte(`{"type": "success"}`))
		})

		result, err := provider.UpdateSubscription(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, billing.OutcomeSuccess, result.Outcome)
		assert.Empty(t, result.CheckoutURL)
	})

	t.Run("checkout required", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"type": "checkout_action_required", "checkout_url": "https://pay.example/sess_1"}`))
		})

		result, err := provider.UpdateSubscription(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, billing.OutcomeCheckoutRequired, result.Outcome)
		assert.Equal(t, "https://pay.example/sess_1", result.CheckoutURL)
	})

	t.Run("unknown response type", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"type": "pending_review"}`))
		})

		_, err := provider.UpdateSubscription(context.Background(), req)
		assert.ErrorIs(t, err, billing.ErrMalformedResponse)
	})

	t.Run("missing identifiers", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(http.ResponseWriter, *http.Request) {})

		_, err := provider.UpdateSubscription(context.Background(), billing.UpdateSubscriptionRequest{NewRateCardID: "rc_x"})
		assert.ErrorIs(t, err, billing.ErrMissingSubscriptionID)

		_, err = provider.UpdateSubscription(context.Background(), billing.UpdateSubscriptionRequest{SubscriptionID: "sub_1"})
		assert.ErrorIs(t, err, billing.ErrMissingRateCardID)
	})
}

func TestLarkCreatePortalSession(t *testing.T) {
	t.Parallel()

	t.Run("returns portal URL", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/portal_sessions", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "https://app.example/", body["return_url"])

			w.Write([]byte(`{"url": "https://billing.example/portal/sess_1"}`))
		})

		session, err := provider.CreatePortalSession(context.Background(), "https://app.example/")
		require.NoError(t, err)
		assert.Equal(t, "https://billing.example/portal/sess_1", session.URL)
	})

	t.Run("missing portal URL", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{}`))
		})

		_, err := provider.CreatePortalSession(context.Background(), "https://app.example/")
		assert.ErrorIs(t, err, billing.ErrMalformedResponse)
	})
}
