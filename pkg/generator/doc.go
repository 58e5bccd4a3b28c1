// Package generator runs the metered character-generation action: it
// validates the YC company URL, attaches the session token, calls the
// generation API, and stashes the result so the per-result view can load it
// by its server-issued ID.
//
// Entitlement gating is a routing decision made before Invoke is called (see
// pkg/entitlement); the controller deliberately does not re-check it.
package generator
