package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/michaelwitz/smart-fit/internal/common"
	"github.com/michaelwitz/smart-fit/internal/logging"
)

// DefaultExpiryThreshold is the lead time used by expiry checks when the
// caller does not supply one.
const DefaultExpiryThreshold = 24 * time.Hour

// Session is the authenticated-identity view derived from a valid,
// non-expired credential. It is recomputed from the stored token on every
// request, never stored itself.
type Session struct {
	UserID    string
	Email     string
	FullName  string
	ExpiresAt time.Time
}

// Store owns the single credential slot. All reads interpret the stored
// token on demand; any detected invalidity (malformed token, missing expiry,
// expired) clears the slot so that corrupt or stale state heals itself.
type Store struct {
	storage Storage
	key     string
	log     logging.Logger
	now     func() time.Time
}

// NewStore builds a Store over the given Storage. A nil logger is replaced
// with a no-op one.
func NewStore(storage Storage, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		storage: storage,
		key:     common.CredentialStorageKey,
		log:     log,
		now:     time.Now,
	}
}

// SetCredential persists token, replacing any prior value. No validation is
// performed at write time.
func (s *Store) SetCredential(ctx context.Context, token string) error {
	return s.storage.Set(ctx, s.key, token)
}

// Credential returns the raw persisted token, or an empty string when none
// is stored.
func (s *Store) Credential(ctx context.Context) (string, error) {
	return s.storage.Get(ctx, s.key)
}

// ClearCredential removes the persisted token. Clearing an already-empty
// slot is not an error.
func (s *Store) ClearCredential(ctx context.Context) error {
	return s.storage.Delete(ctx, s.key)
}

// IsSessionValid reports whether a decodable, non-expired credential is
// stored. Malformed or expired credentials are cleared as a side effect.
func (s *Store) IsSessionValid(ctx context.Context) bool {
	token, err := s.Credential(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read stored credential", "error", err)
		return false
	}
	if token == "" {
		return false
	}

	sess, err := s.decode(token)
	if err != nil {
		s.log.Warn(ctx, "stored credential is not a valid token, clearing", "error", err)
		s.clearQuietly(ctx)
		return false
	}

	if !sess.ExpiresAt.After(s.now()) {
		s.log.Info(ctx, "stored credential expired, clearing", "expired_at", sess.ExpiresAt)
		s.clearQuietly(ctx)
		return false
	}

	return true
}

// CurrentSession projects the identity view from the stored credential, or
// returns nil when no valid, non-expired credential exists. Like
// IsSessionValid, it clears the slot on any detected invalidity.
func (s *Store) CurrentSession(ctx context.Context) *Session {
	token, err := s.Credential(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read stored credential", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	sess, err := s.decode(token)
	if err != nil {
		s.log.Warn(ctx, "stored credential is not a valid token, clearing", "error", err)
		s.clearQuietly(ctx)
		return nil
	}

	if !sess.ExpiresAt.After(s.now()) {
		s.clearQuietly(ctx)
		return nil
	}

	return sess
}

// IsExpiringSoon reports whether the stored credential expires within
// threshold. A zero threshold means DefaultExpiryThreshold. Returns false
// when no credential is stored; an already-expired credential counts as
// expiring soon.
func (s *Store) IsExpiringSoon(ctx context.Context, threshold time.Duration) bool {
	if threshold == 0 {
		threshold = DefaultExpiryThreshold
	}

	token, err := s.Credential(ctx)
	if err != nil || token == "" {
		return false
	}

	sess, err := s.decode(token)
	if err != nil {
		s.log.Warn(ctx, "stored credential is not a valid token, clearing", "error", err)
		s.clearQuietly(ctx)
		return false
	}

	return sess.ExpiresAt.Sub(s.now()) <= threshold
}

// decode splits the token and reads its claims segment. Signatures are not
// verified here; see the package comment for the trust boundary.
func (s *Store) decode(token string) (*Session, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, common.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing exp claim", common.ErrInvalidToken)
	}

	userID := claimString(claims, "sub")
	if userID == "" {
		userID = claimString(claims, "user_id")
	}
	fullName := claimString(claims, "fullName")
	if fullName == "" {
		fullName = claimString(claims, "name")
	}

	return &Session{
		UserID:    userID,
		Email:     claimString(claims, "email"),
		FullName:  fullName,
		ExpiresAt: exp.Time,
	}, nil
}

func (s *Store) clearQuietly(ctx context.Context) {
	if err := s.ClearCredential(ctx); err != nil {
		s.log.Error(ctx, "failed to clear stored credential", "error", err)
	}
}

// claimString reads a claim that servers may emit as either a string or a
// number (user ids in particular).
func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
