// Package entitlement decides whether the signed-in user may run a metered
// generation right now.
//
// Evaluate is a pure, total function of a billing snapshot: it performs no
// I/O and has no failure modes. Gating is a routing decision made before a
// generation is attempted; the generation controller itself does not
// re-check entitlement.
package entitlement
