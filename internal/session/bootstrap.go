package session

import (
	"context"

	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// FetchFunc fetches the authoritative profile for the current token.
type FetchFunc func(ctx context.Context) (Profile, error)

// Bootstrap reconciles the server-side profile into the store. It is
// invoked whenever the session gains a token: after login, and on
// startup when a persisted token is found.
//
// The token is captured before the fetch and checked again before the
// result is applied. A response that resolves after the session was
// cleared (or re-authenticated) is discarded rather than applied out of
// order, so concurrent bootstraps settle to the last applied response.
//
// An authorization failure needs no handling here: the HTTP wrapper has
// already cleared the session, which changes the token and makes the
// reconciliation below a no-op.
func (s *Store) Bootstrap(ctx context.Context, fetch FetchFunc) error {
	token := s.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	s.markLoadingIfCurrent(token)

	p, err := fetch(ctx)
	if err != nil {
		// The failure is reported either way; the token-at-call-time
		// check only decides whether it is recorded in the store.
		if !s.markFailedIfCurrent(token, err.Error()) {
			logger.Debugf("Session changed during profile fetch; leaving state untouched")
		}
		return err
	}

	if !s.applyProfileIfCurrent(token, p) {
		logger.Debugf("Discarding profile from superseded fetch")
		return nil
	}
	return nil
}
