package cli

import (
	"context"
	"flag"
	"time"

	"github.com/lumenhq/lumen-cli/internal/session"
	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// loginView collects credentials, exchanges them for a token, and
// installs the session. The avatar is not taken from the login
// response; the follow-up bootstrap fetches the authoritative profile.
func (a *App) loginView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "account email")
	passwordFlag := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	email, err := promptOr(*emailFlag, "Email")
	if err != nil {
		return err
	}
	password, err := promptPasswordOr(*passwordFlag, "Password")
	if err != nil {
		return err
	}

	form := loginForm{Email: email, Password: password}
	if err := form.Validate(); err != nil {
		reportFormErrors(err)
		return err
	}

	result, err := a.client.Login(ctx, email, password)
	if err != nil {
		reportAPIError(err)
		return err
	}

	profile := session.Profile{
		Name:  result.User.Name,
		Email: result.User.Email,
	}
	if err := a.store.SetAuthenticated(profile, result.Token); err != nil {
		return err
	}

	logger.Infof("Signed in as %s <%s>", result.User.Name, result.User.Email)

	// Refresh avatar and any server-side profile changes.
	if err := a.store.Bootstrap(ctx, a.fetchProfile); err != nil {
		logger.Debugf("Profile refresh after login failed: %v", err)
	}
	return nil
}

// registerView creates an account. Success does not sign the user in;
// the server expects a separate login.
func (a *App) registerView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	nameFlag := fs.String("name", "", "display name")
	emailFlag := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	name, err := promptOr(*nameFlag, "Name")
	if err != nil {
		return err
	}
	email, err := promptOr(*emailFlag, "Email")
	if err != nil {
		return err
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		return err
	}

	form := registerForm{Name: name, Email: email, Password: password, Confirm: confirm}
	if err := form.Validate(); err != nil {
		reportFormErrors(err)
		return err
	}

	if err := a.client.Register(ctx, name, email, password); err != nil {
		reportAPIError(err)
		return err
	}

	logger.Infof("Account created. Run `lumen login` to sign in.")
	return nil
}

// Logout clears the local session. No network round trip: the token is
// simply forgotten, and clearing with no session is safe.
func (a *App) Logout() error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	logger.Infof("Signed out.")
	return nil
}

// dashboardView is the authenticated landing view: a session summary.
func (a *App) dashboardView(ctx context.Context, args []string) error {
	s := a.store.Session()

	logger.Infof("Signed in as %s <%s>", s.Profile.Name, s.Profile.Email)
	if s.Profile.AvatarRef != "" {
		logger.Infof("Avatar: %s", s.Profile.AvatarRef)
	}
	if expiry, ok := a.store.TokenExpiry(); ok {
		if time.Now().After(expiry) {
			logger.Warnf("Token expired %s; the next request will sign you out", expiry.Format(time.RFC3339))
		} else {
			logger.Infof("Token valid until %s", expiry.Format(time.RFC3339))
		}
	}
	switch s.Status {
	case session.StatusFailed:
		logger.Warnf("Last profile refresh failed: %s", s.LastError)
	case session.StatusIdle:
		logger.Infof("Profile not refreshed yet; run `lumen profile`")
	}
	return nil
}
