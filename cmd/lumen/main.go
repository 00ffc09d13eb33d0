package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lumenhq/lumen-cli/internal/cli"
	"github.com/lumenhq/lumen-cli/internal/config"
	"github.com/lumenhq/lumen-cli/internal/version"
	"github.com/lumenhq/lumen-cli/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Debug {
		logger.SetLevel(logger.LevelDebug)
	}
	if raw := os.Getenv("LUMEN_LOG_LEVEL"); raw != "" {
		level, err := logger.ParseLevel(raw)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "help", "--help", "-h":
		printUsage()
		return nil
	case "version", "--version", "-v":
		fmt.Printf("lumen %s\n", version.RichVersion())
		return nil
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		return err
	}

	if cfg.Debug {
		logger.Debugf("Config: ServerURL=%s, LumenHome=%s", cfg.ServerURL, cfg.LumenHome)
	}

	ctx := context.Background()

	// Reconcile the server profile when a persisted token is present,
	// except for views that do their own fetch or none at all.
	switch args[0] {
	case "status":
		app.BootstrapIfAuthenticated(ctx)
	}

	rest := args[1:]
	switch args[0] {
	case "login":
		return app.Navigate(ctx, "/login", rest)
	case "register":
		return app.Navigate(ctx, "/register", rest)
	case "logout":
		return app.Logout()
	case "status", "dashboard":
		return app.Navigate(ctx, "/dashboard", rest)
	case "profile":
		return app.Navigate(ctx, "/profile", rest)
	case "passwd", "change-password":
		return app.Navigate(ctx, "/change-password", rest)
	case "forgot-password":
		return app.Navigate(ctx, "/forgot-password", rest)
	case "reset-password":
		return app.Navigate(ctx, "/reset-password", rest)
	case "gallery":
		return app.Navigate(ctx, "/gallery", rest)
	case "upload":
		return app.Navigate(ctx, "/upload-gallery", rest)
	default:
		// Unknown commands fall back by authentication state, like the
		// catch-all route.
		return app.Navigate(ctx, "/"+args[0], nil)
	}
}

func printUsage() {
	fmt.Println(`lumen - terminal client for the Lumen gallery service

Usage:
  lumen login [--email E] [--password P]   Sign in
  lumen register [--name N] [--email E]    Create an account
  lumen logout                             Sign out (local only)
  lumen status                             Show the current session
  lumen profile                            Show the profile
  lumen profile update [--name N] [--email E] [--image PATH]
  lumen passwd                             Change password
  lumen forgot-password [--email E]        Request a reset token
  lumen reset-password [--token T] [--email E]
  lumen gallery [--layout grid|masonry|carousel|list]
  lumen gallery share <n>                  Print an image URL as a QR code
  lumen upload <image-path>                Simulated gallery upload
  lumen version                            Print the version

Environment:
  LUMEN_SERVER_URL   API base URL
  LUMEN_HOME_DIR     State directory (default ~/.lumen)
  LUMEN_LOG_LEVEL    trace|debug|info|warn|error
  DEBUG              Enable debug logging`)
}
