// Package catalog holds the static pricing catalog for the character
// generator product: the ordered list of paywall plans, lookups by the
// billing provider's rate card ID, and the pure upgrade/downgrade
// classification used by the plan-change flow.
//
// The catalog is constructed once at startup and never mutated. Lookups
// against unknown rate card IDs are hard errors rather than fallbacks so a
// misdeployed catalog fails loudly instead of silently gating users onto a
// guessed plan.
package catalog
