// Package cli implements the command surface. Each command is a view
// identified by a path; navigation consults the route guard before a
// view runs, and a redirect decision runs the redirect target instead.
package cli

import (
	"context"
	"fmt"

	"github.com/lumenhq/lumen-cli/internal/api"
	"github.com/lumenhq/lumen-cli/internal/config"
	"github.com/lumenhq/lumen-cli/internal/guard"
	"github.com/lumenhq/lumen-cli/internal/session"
	"github.com/lumenhq/lumen-cli/internal/storage"
	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// viewFunc runs one view. Args are the command arguments after the
// subcommand name; redirected navigations run the target without args.
type viewFunc func(ctx context.Context, args []string) error

// App wires the session store, API client, and views together.
type App struct {
	cfg    *config.Config
	store  *session.Store
	client *api.Client
	views  map[string]viewFunc
}

// NewApp loads the persisted session and builds the client stack.
func NewApp(cfg *config.Config) (*App, error) {
	slot := storage.NewFileSlot(cfg.TokenPath)
	store, err := session.Load(slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	a := &App{
		cfg:    cfg,
		store:  store,
		client: api.NewClient(cfg.ServerURL, store),
	}
	a.views = map[string]viewFunc{
		"/login":           a.loginView,
		"/register":        a.registerView,
		"/forgot-password": a.forgotPasswordView,
		"/reset-password":  a.resetPasswordView,
		"/dashboard":       a.dashboardView,
		"/profile":         a.profileView,
		"/change-password": a.changePasswordView,
		"/upload-gallery":  a.uploadGalleryView,
		"/gallery":         a.galleryView,
	}
	return a, nil
}

// Store exposes the session store (main uses it for startup bootstrap).
func (a *App) Store() *session.Store {
	return a.store
}

// BootstrapIfAuthenticated refreshes the profile when a persisted token
// is present. Failures are reflected in the store status and logged;
// startup proceeds either way.
func (a *App) BootstrapIfAuthenticated(ctx context.Context) {
	if !a.store.Session().Authenticated() {
		return
	}
	if err := a.store.Bootstrap(ctx, a.fetchProfile); err != nil {
		logger.Debugf("Profile bootstrap failed: %v", err)
	}
}

// fetchProfile adapts the API profile endpoint to the bootstrapper.
func (a *App) fetchProfile(ctx context.Context) (session.Profile, error) {
	user, err := a.client.FetchProfile(ctx)
	if err != nil {
		return session.Profile{}, err
	}
	return session.Profile{
		Name:      user.Name,
		Email:     user.Email,
		AvatarRef: user.ProfileImage,
	}, nil
}

// Navigate evaluates the guard for path and runs the permitted view.
// Token transitions inside a view (login, 401 interception) change what
// the next Navigate resolves to; a single navigation follows at most
// one redirect because the guard always allows its own targets.
func (a *App) Navigate(ctx context.Context, path string, args []string) error {
	decision := guard.Resolve(path, a.store.Session())
	if !decision.Allow {
		logger.Tracef("Guard redirected %s -> %s", path, decision.RedirectTo)
		path = decision.RedirectTo
		args = nil
	}

	view, ok := a.views[path]
	if !ok {
		return fmt.Errorf("no view for %s", path)
	}
	return view(ctx, args)
}
