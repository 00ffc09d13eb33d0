package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen-cli/internal/session"
)

func authed() session.Session {
	return session.Session{Token: "T1", Profile: session.Profile{Name: "A"}}
}

func anonymous() session.Session {
	return session.Session{}
}

func TestResolveTable(t *testing.T) {
	cases := []struct {
		name string
		path string
		sess session.Session
		want Decision
	}{
		{"login while anonymous", "/login", anonymous(), Decision{Allow: true}},
		{"login while authenticated", "/login", authed(), Decision{RedirectTo: LandingPath}},
		{"register while anonymous", "/register", anonymous(), Decision{Allow: true}},
		{"register while authenticated", "/register", authed(), Decision{RedirectTo: LandingPath}},
		{"forgot-password while authenticated", "/forgot-password", authed(), Decision{RedirectTo: LandingPath}},
		{"reset-password while anonymous", "/reset-password", anonymous(), Decision{Allow: true}},

		{"dashboard while authenticated", "/dashboard", authed(), Decision{Allow: true}},
		{"dashboard while anonymous", "/dashboard", anonymous(), Decision{RedirectTo: LoginPath}},
		{"profile while anonymous", "/profile", anonymous(), Decision{RedirectTo: LoginPath}},
		{"change-password while anonymous", "/change-password", anonymous(), Decision{RedirectTo: LoginPath}},
		{"upload-gallery while authenticated", "/upload-gallery", authed(), Decision{Allow: true}},

		{"gallery while anonymous", "/gallery", anonymous(), Decision{Allow: true}},
		{"gallery while authenticated", "/gallery", authed(), Decision{Allow: true}},

		{"unmatched while authenticated", "/bogus", authed(), Decision{RedirectTo: LandingPath}},
		{"unmatched while anonymous", "/bogus", anonymous(), Decision{RedirectTo: LoginPath}},
		{"root while anonymous", "/", anonymous(), Decision{RedirectTo: LoginPath}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Resolve(tc.path, tc.sess))
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	paths := []string{"/login", "/register", "/dashboard", "/profile", "/gallery", "/nope", ""}
	sessions := []session.Session{anonymous(), authed()}

	for _, path := range paths {
		for _, sess := range sessions {
			first := Resolve(path, sess)
			for i := 0; i < 3; i++ {
				require.Equal(t, first, Resolve(path, sess),
					"Resolve(%q) must be deterministic", path)
			}
		}
	}
}

func TestGuardDependsOnlyOnToken(t *testing.T) {
	// Profile and status must not affect decisions; only the token does.
	weird := session.Session{
		Token:     "T1",
		Status:    session.StatusFailed,
		LastError: "profile fetch failed",
	}
	require.Equal(t, Resolve("/profile", authed()), Resolve("/profile", weird))
	require.Equal(t, Resolve("/login", authed()), Resolve("/login", weird))
}

func TestTokenTransitionFlipsDecision(t *testing.T) {
	// The same rendered path resolves differently after a clear, which
	// is what forces re-evaluation on session changes.
	require.Equal(t, Decision{Allow: true}, Resolve("/profile", authed()))
	require.Equal(t, Decision{RedirectTo: LoginPath}, Resolve("/profile", anonymous()))
}
