package session

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen-cli/internal/storage"
)

// fakeSlot is an in-memory token slot with injectable failures.
type fakeSlot struct {
	mu       sync.Mutex
	token    string
	storeErr error
	clearErr error
}

func (f *fakeSlot) Load() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, nil
}

func (f *fakeSlot) Store(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.storeErr != nil {
		return f.storeErr
	}
	f.token = token
	return nil
}

func (f *fakeSlot) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	f.token = ""
	return nil
}

func TestLoadSeedsPersistedToken(t *testing.T) {
	slot := storage.NewFileSlot(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, slot.Store("T1"))

	store, err := Load(slot)
	require.NoError(t, err)

	s := store.Session()
	require.Equal(t, "T1", s.Token)
	require.True(t, s.Authenticated())
	require.Equal(t, Profile{}, s.Profile, "profile is not persisted and must start empty")
	require.Equal(t, StatusIdle, s.Status)
}

func TestSetAuthenticatedPersistsAndSets(t *testing.T) {
	slot := &fakeSlot{}
	store := NewStore(slot)

	p := Profile{Name: "A", Email: "a@b.com"}
	require.NoError(t, store.SetAuthenticated(p, "T1"))

	s := store.Session()
	require.Equal(t, "T1", s.Token)
	require.Equal(t, p, s.Profile)

	persisted, err := slot.Load()
	require.NoError(t, err)
	require.Equal(t, "T1", persisted)
}

func TestSetAuthenticatedRejectsEmptyToken(t *testing.T) {
	store := NewStore(&fakeSlot{})
	require.Error(t, store.SetAuthenticated(Profile{Name: "A"}, ""))
	require.False(t, store.Session().Authenticated())
}

func TestSetAuthenticatedRollsBackOnPersistFailure(t *testing.T) {
	slot := &fakeSlot{storeErr: errors.New("disk full")}
	store := NewStore(slot)

	err := store.SetAuthenticated(Profile{Name: "A", Email: "a@b.com"}, "T1")
	require.Error(t, err)

	s := store.Session()
	require.Equal(t, "", s.Token, "in-memory state must not diverge from durable state")
	require.Equal(t, Profile{}, s.Profile)
}

func TestClearIsAtomicAndIdempotent(t *testing.T) {
	slot := &fakeSlot{}
	store := NewStore(slot)
	require.NoError(t, store.SetAuthenticated(Profile{Name: "A", Email: "a@b.com"}, "T1"))
	store.MarkFailed("boom")

	require.NoError(t, store.Clear())
	first := store.Session()
	require.Equal(t, "", first.Token)
	require.Equal(t, Profile{}, first.Profile)
	require.Equal(t, StatusIdle, first.Status)
	require.Equal(t, "", first.LastError)

	// Second clear observes identical state.
	require.NoError(t, store.Clear())
	require.Equal(t, first, store.Session())
}

func TestClearKeepsStateWhenSlotFails(t *testing.T) {
	slot := &fakeSlot{}
	store := NewStore(slot)
	require.NoError(t, store.SetAuthenticated(Profile{Name: "A"}, "T1"))

	slot.clearErr = errors.New("readonly fs")
	require.Error(t, store.Clear())
	require.Equal(t, "T1", store.Session().Token)
}

func TestClearWithNoSessionIsSafe(t *testing.T) {
	store := NewStore(&fakeSlot{})
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	require.False(t, store.Session().Authenticated())
}

func TestStatusMutations(t *testing.T) {
	store := NewStore(&fakeSlot{})
	require.NoError(t, store.SetAuthenticated(Profile{Name: "A"}, "T1"))

	store.MarkLoading()
	require.Equal(t, StatusLoading, store.Session().Status)

	store.MarkFailed("profile fetch failed")
	s := store.Session()
	require.Equal(t, StatusFailed, s.Status)
	require.Equal(t, "profile fetch failed", s.LastError)
	require.Equal(t, "T1", s.Token, "failures must not touch the token")

	store.UpdateProfile(Profile{Name: "B", Email: "b@c.com", AvatarRef: "img.png"})
	s = store.Session()
	require.Equal(t, StatusSucceeded, s.Status)
	require.Equal(t, "", s.LastError)
	require.Equal(t, "img.png", s.Profile.AvatarRef)
}

func TestTokenExpiry(t *testing.T) {
	store := NewStore(&fakeSlot{})

	_, ok := store.TokenExpiry()
	require.False(t, ok, "no token means no expiry")

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, store.SetAuthenticated(Profile{}, token))

	got, ok := store.TokenExpiry()
	require.True(t, ok)
	require.True(t, got.Equal(exp), "got %v want %v", got, exp)

	// Opaque tokens simply have no readable expiry.
	require.NoError(t, store.SetAuthenticated(Profile{}, "opaque-token"))
	_, ok = store.TokenExpiry()
	require.False(t, ok)
}
