// Package billing integrates with the usage-based billing provider that owns
// subscription records, usage counters and checkout sessions for the
// character generator product.
//
// The package has two layers. Provider is the thin wire-level client for the
// provider's customer access API (retrieve billing state, update a
// subscription, open the self-service portal). StateFetcher sits on top and
// reduces the raw billing state to a compact BillingState snapshot: exactly
// one active subscription, exactly one usage record, credits remaining, and
// the overage permission derived from the plan catalog. Snapshots are
// point-in-time reads; after any plan change or usage event callers re-fetch
// instead of mutating a previously held snapshot.
package billing
