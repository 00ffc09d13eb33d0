package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/lumenhq/lumen-cli/internal/session"
	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// profileView shows the profile, refreshing it from the server first.
// `lumen profile update` submits changes instead.
func (a *App) profileView(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "update" {
		return a.profileUpdate(ctx, args[1:])
	}

	if err := a.store.Bootstrap(ctx, a.fetchProfile); err != nil {
		reportAPIError(err)
		return err
	}

	s := a.store.Session()
	logger.Infof("Name:   %s", s.Profile.Name)
	logger.Infof("Email:  %s", s.Profile.Email)
	if s.Profile.AvatarRef != "" {
		logger.Infof("Avatar: %s", s.Profile.AvatarRef)
	}
	return nil
}

// profileUpdate submits new profile fields, with an optional avatar
// image, as a multipart form.
func (a *App) profileUpdate(ctx context.Context, args []string) error {
	current := a.store.Session().Profile

	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	nameFlag := fs.String("name", current.Name, "display name")
	emailFlag := fs.String("email", current.Email, "account email")
	imageFlag := fs.String("image", "", "path to an avatar image (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *nameFlag == "" || *emailFlag == "" {
		return fmt.Errorf("name and email must not be empty")
	}

	user, err := a.client.UpdateProfile(ctx, *nameFlag, *emailFlag, *imageFlag)
	if err != nil {
		reportAPIError(err)
		return err
	}

	a.store.UpdateProfile(session.Profile{
		Name:      user.Name,
		Email:     user.Email,
		AvatarRef: user.ProfileImage,
	})
	logger.Infof("Profile updated: %s <%s>", user.Name, user.Email)
	return nil
}
