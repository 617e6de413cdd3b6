package cli

import (
	"bufio"
	"context"
	"errors"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/michaelwitz/smart-fit/internal/client/api"
	"github.com/michaelwitz/smart-fit/internal/client/config"
	"github.com/michaelwitz/smart-fit/internal/client/session"
	"github.com/michaelwitz/smart-fit/internal/logging"
)

// refreshPollInterval is how often the background watcher re-checks whether
// the session needs a proactive refresh.
const refreshPollInterval = time.Minute

type App struct {
	config  *config.Config
	session *session.Store
	api     *api.Client
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewConsoleLogger(os.Stderr)

	db, err := session.InitDatabase(ctx, c.CredentialDBPath)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}

	store := session.NewStore(session.NewSQLiteStorage(db), log)
	apiClient := api.New(c, store, log)

	app := &App{
		config:  c,
		session: store,
		api:     apiClient,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}

	// Any 401 resets the REPL to the logged-out prompt, whatever call
	// triggered it.
	apiClient.OnUnauthorized(func() {
		printlnFn("Your session has expired. Please log in again.")
	})

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsSessionValid(context.Background())
}

// getStatus renders the prompt suffix: the logged-in email, or nothing.
func (a *App) getStatus() string {
	sess := a.session.CurrentSession(context.Background())
	if sess == nil {
		return ""
	}
	return "(" + sess.Email + ")"
}

func (a *App) Run(ctx context.Context) {
	go a.StartRefreshWatcher(ctx, refreshPollInterval)

	printlnFn("Welcome to Smart Fit CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// StartRefreshWatcher periodically checks the stored session and refreshes
// the token once it is close to expiry. This is the proactive refresh
// policy; the session store only reports "expiring soon", it never calls the
// network itself.
func (a *App) StartRefreshWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.session.IsSessionValid(ctx) {
				continue
			}
			if !a.session.IsExpiringSoon(ctx, a.config.RefreshThreshold) {
				continue
			}

			if _, err := a.api.RefreshToken(ctx); err != nil {
				a.log.Warn(ctx, "token refresh failed", "error", err)
			} else {
				a.log.Info(ctx, "token refreshed")
			}

		case <-ctx.Done():
			return
		}
	}
}

// userMessage turns an API failure into the line shown to the user: the
// server-provided message when there is one, the wrapped fallback otherwise.
func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
