// Package session owns the client-side authentication state.
//
// The store is the single writer of the durable token slot: mutations
// that change the token persist it as part of the same logical
// operation, and a failed write leaves the in-memory state untouched so
// memory never diverges from disk.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lumenhq/lumen-cli/internal/storage"
	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// ErrNotAuthenticated is returned by operations that require a token
// when the session has none.
var ErrNotAuthenticated = errors.New("not authenticated")

// Status is the lifecycle of the most recent profile fetch.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Profile is the denormalized display data for the signed-in user. It
// may be stale until a bootstrap completes; AvatarRef is only populated
// by the bootstrapper, which is authoritative for it.
type Profile struct {
	Name      string
	Email     string
	AvatarRef string
}

// Session is an immutable snapshot of the current authentication state.
type Session struct {
	Token     string
	Profile   Profile
	Status    Status
	LastError string
}

// Authenticated reports whether the session holds a token. Guard
// decisions depend on this and nothing else.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store holds the process-wide session and couples it to the durable
// token slot. All mutations are synchronous and atomic: there is no
// observable state where the token is absent but the profile is
// populated.
type Store struct {
	mu   sync.Mutex
	slot storage.Slot
	cur  Session
}

// NewStore creates an empty store over slot without touching disk.
func NewStore(slot storage.Slot) *Store {
	return &Store{slot: slot, cur: Session{Status: StatusIdle}}
}

// Load creates a store and seeds it with the persisted token, if any.
// The profile is left empty; callers refetch it via Bootstrap.
func Load(slot storage.Slot) (*Store, error) {
	token, err := slot.Load()
	if err != nil {
		return nil, err
	}
	s := NewStore(slot)
	s.cur.Token = token
	return s, nil
}

// Session returns a snapshot of the current state.
func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Token returns the current bearer token ("" when unauthenticated).
func (s *Store) Token() string {
	return s.Session().Token
}

// SetAuthenticated installs a freshly issued token together with the
// minimal profile returned alongside it. The token is persisted first;
// if the write fails the in-memory state is left unchanged.
func (s *Store) SetAuthenticated(p Profile, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.Store(token); err != nil {
		return err
	}
	s.cur = Session{Token: token, Profile: p, Status: StatusIdle}
	return nil
}

// UpdateProfile replaces the profile fields, leaving the token alone.
func (s *Store) UpdateProfile(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Profile = p
	s.cur.Status = StatusSucceeded
	s.cur.LastError = ""
}

// MarkLoading records that a profile fetch is in flight.
func (s *Store) MarkLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Status = StatusLoading
	s.cur.LastError = ""
}

// MarkFailed records a failed profile fetch. The token is untouched.
func (s *Store) MarkFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Status = StatusFailed
	s.cur.LastError = msg
}

// Clear removes the token and all derived state. The slot is cleared
// first; if that fails, memory is left unchanged. Clearing an already
// cleared session is a no-op, so concurrent 401 interceptions settle to
// exactly one logical clear.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.Clear(); err != nil {
		return err
	}
	s.cur = Session{Status: StatusIdle}
	return nil
}

// Invalidate clears the session in response to an authorization
// failure. It satisfies the api.Credentials contract and never fails
// the caller: a slot error here is logged and the next explicit action
// will surface it.
func (s *Store) Invalidate() {
	if err := s.Clear(); err != nil {
		logger.Warnf("Failed to clear session: %v", err)
	}
}

// applyProfileIfCurrent installs a fetched profile only when the token
// it was fetched under is still the current one. Returns false when the
// response is stale and was discarded.
func (s *Store) applyProfileIfCurrent(token string, p Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur.Token != token {
		return false
	}
	s.cur.Profile = p
	s.cur.Status = StatusSucceeded
	s.cur.LastError = ""
	return true
}

// markFailedIfCurrent records a fetch failure only when token is still
// current.
func (s *Store) markFailedIfCurrent(token, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur.Token != token {
		return false
	}
	s.cur.Status = StatusFailed
	s.cur.LastError = msg
	return true
}

// markLoadingIfCurrent records an in-flight fetch only when token is
// still current.
func (s *Store) markLoadingIfCurrent(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur.Token != token {
		return
	}
	s.cur.Status = StatusLoading
	s.cur.LastError = ""
}

// TokenExpiry returns the expiry embedded in the stored token, when the
// token is a JWT carrying one. The signature is not verified; this is
// display metadata only.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
