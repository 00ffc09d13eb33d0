// Package guard decides, per navigation, whether a view is permitted
// for the current session.
//
// Resolve is a pure function over (path, session): it never mutates
// anything and always yields the same decision for the same inputs. The
// navigation layer re-evaluates it on every view change and after any
// token transition.
package guard

import "github.com/lumenhq/lumen-cli/internal/session"

const (
	// LoginPath is where unauthenticated navigations are sent.
	LoginPath = "/login"
	// LandingPath is the default authenticated view.
	LandingPath = "/dashboard"
)

// Decision is the outcome of a guard evaluation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// publicOnly views are reachable only while signed out.
var publicOnly = map[string]bool{
	"/login":           true,
	"/register":        true,
	"/forgot-password": true,
	"/reset-password":  true,
}

// private views require a token.
var private = map[string]bool{
	"/dashboard":       true,
	"/profile":         true,
	"/change-password": true,
	"/upload-gallery":  true,
}

// unrestricted views are reachable in either state.
var unrestricted = map[string]bool{
	"/gallery": true,
}

// Resolve maps a requested path and session snapshot to a decision.
// Unmatched paths fall back by authentication state.
func Resolve(path string, s session.Session) Decision {
	authed := s.Authenticated()
	switch {
	case publicOnly[path]:
		if authed {
			return redirect(LandingPath)
		}
		return allow()
	case private[path]:
		if !authed {
			return redirect(LoginPath)
		}
		return allow()
	case unrestricted[path]:
		return allow()
	default:
		if authed {
			return redirect(LandingPath)
		}
		return redirect(LoginPath)
	}
}
