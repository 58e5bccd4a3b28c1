// Package identity defines the contract with the external identity provider
// that owns authentication for the character generator product.
//
// The product never sees credentials; it only needs a bearer session token
// for API calls, the stable subject ID of the signed-in user, and a way to
// revoke the session on logout. SessionSource abstracts exactly that surface
// so components can be wired with the real provider client in production and
// a StaticSource in tests.
package identity
