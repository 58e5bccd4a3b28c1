// Package charactergen is the client-side SDK for the character generator
// demo product: a metered AI toy gated by a usage-based billing provider and
// an external identity provider.
//
// The interesting part is the entitlement and plan-change workflow, split
// across focused packages:
//
//   - pkg/catalog: the static pricing catalog and upgrade/downgrade
//     classification
//   - pkg/billing: the billing provider client and the snapshot fetcher
//   - pkg/entitlement: the pure allow/deny gate over a billing snapshot
//   - pkg/generator: the metered generation controller and API client
//   - pkg/planchange: the upgrade flow state machine with its two outcomes
//     (applied synchronously, or redirected to external checkout)
//   - pkg/resultstore: the client-side stash of generation results by ID
//   - pkg/identity: the session/token contract with the identity provider
//
// Typical wiring:
//
//	var larkCfg billing.LarkConfig
//	config.MustLoad(&larkCfg)
//	provider, _ := billing.NewLarkProvider(larkCfg)
//
//	var catCfg catalog.Config
//	config.MustLoad(&catCfg)
//	cat, _ := catalog.Default(catCfg)
//
//	session := identity.NewStaticSource(subjectID, sessionToken)
//	fetcher := billing.NewStateFetcher(provider, cat, session)
//
//	state, err := fetcher.Fetch(ctx)
//	if err != nil { ... }
//	if d := entitlement.Evaluate(*state); !d.Allowed {
//		// route to the paywall with entitlement.Message(d)
//	}
package charactergen
