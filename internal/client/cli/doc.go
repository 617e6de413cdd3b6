// Package cli provides the interactive Smart Fit command-line client.
//
// It wires configuration, the local credential store, and the API client
// into an interactive REPL. Typical flow: the user logs in or registers, the
// issued token is persisted locally, and a background watcher refreshes the
// session before it expires.
//
// Key commands:
//   - register / login / logout
//   - profile / whoami
//   - verify (e-mail verification), forgot / reset (password reset)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// When any API call comes back 401 the credential is dropped and the REPL
// falls back to the logged-out prompt.
package cli
