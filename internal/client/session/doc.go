// Package session owns persistence and interpretation of the single bearer
// credential (a JWT) issued by the Smart Fit API.
//
// The Store never verifies token signatures. Tokens only ever originate from
// this client's own login/register/refresh responses, so their claims are
// trusted as issued; the Store merely decodes the claims segment and checks
// the expiry. Adding signature verification here would change behavior and
// is deliberately out of scope.
//
// Storage is an injectable key-value interface with SQLite-backed and
// in-memory implementations. The SQLite variant is the durable slot shared
// across process restarts, the in-memory one serves tests and ephemeral use.
package session
