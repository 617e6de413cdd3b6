package cli

import "context"

// Logout ends the session. The local credential is gone afterwards whatever
// the server said, so the user is told they are logged out either way; a
// failed network call is only worth a log line.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout request failed, local session cleared anyway", "error", err)
	}
	printlnFn("Logged out")
	return nil
}
