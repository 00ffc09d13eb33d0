package cli

import (
	"context"
	"flag"

	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// changePasswordView rotates the signed-in user's password.
func (a *App) changePasswordView(ctx context.Context, args []string) error {
	current, err := promptPassword("Current password")
	if err != nil {
		return err
	}
	password, err := promptPassword("New password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm new password")
	if err != nil {
		return err
	}

	form := changePasswordForm{Current: current, Password: password, Confirm: confirm}
	if err := form.Validate(); err != nil {
		reportFormErrors(err)
		return err
	}

	if err := a.client.ChangePassword(ctx, current, password, confirm); err != nil {
		reportAPIError(err)
		return err
	}

	logger.Infof("Password changed.")
	return nil
}

// forgotPasswordView starts the recovery flow.
func (a *App) forgotPasswordView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	email, err := promptOr(*emailFlag, "Email")
	if err != nil {
		return err
	}

	if err := a.client.ForgotPassword(ctx, email); err != nil {
		reportAPIError(err)
		return err
	}

	logger.Infof("If the address exists, a reset token is on its way.")
	logger.Infof("Complete the flow with `lumen reset-password`.")
	return nil
}

// resetPasswordView completes recovery with the mailed token.
func (a *App) resetPasswordView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	tokenFlag := fs.String("token", "", "reset token from the email")
	emailFlag := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := promptOr(*tokenFlag, "Reset token")
	if err != nil {
		return err
	}
	email, err := promptOr(*emailFlag, "Email")
	if err != nil {
		return err
	}
	password, err := promptPassword("New password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm new password")
	if err != nil {
		return err
	}

	form := resetPasswordForm{Token: token, Email: email, Password: password, Confirm: confirm}
	if err := form.Validate(); err != nil {
		reportFormErrors(err)
		return err
	}

	if err := a.client.ResetPassword(ctx, token, email, password, confirm); err != nil {
		reportAPIError(err)
		return err
	}

	logger.Infof("Password reset. Run `lumen login` to sign in.")
	return nil
}
