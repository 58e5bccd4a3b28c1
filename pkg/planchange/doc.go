// Package planchange drives the self-service upgrade flow as an explicit
// state machine: Idle -> Confirming -> Submitting -> Done or Failed.
//
// Only upgrades are self-service. Selecting the current plan is rejected and
// downgrades are routed to a support path without ever calling the billing
// provider. A submission ends in one of two legal outcomes: the provider
// applies the change synchronously, or it returns a checkout URL and the
// flow completes externally; completion of a redirected checkout is observed
// only when the user returns via the success callback URL.
//
// The single-flight guard lives in the orchestrator itself, so the "one
// outstanding change" invariant holds even under programmatic misuse rather
// than depending on a disabled button.
package planchange
