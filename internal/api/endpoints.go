package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// User is the server's user representation.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

// LoginResult is the credential material issued on successful login.
type LoginResult struct {
	Token string
	User  User
}

type loginResponse struct {
	Data struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	} `json:"data"`
}

type userEnvelope struct {
	User User `json:"user"`
}

// Login exchanges credentials for a bearer token. No token is attached
// to this request; any previous session stays untouched on failure.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp loginResponse
	if err := c.postJSON(ctx, "/login", body, &resp); err != nil {
		return LoginResult{}, err
	}
	if resp.Data.Token == "" {
		return LoginResult{}, &Error{Kind: KindServer, Message: "login response missing token"}
	}
	return LoginResult{Token: resp.Data.Token, User: resp.Data.User}, nil
}

// Register creates an account. It has no session side effect; the
// caller signs in separately afterwards.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	return c.postJSON(ctx, "/register", body, nil)
}

// FetchProfile returns the authoritative profile for the current token.
func (c *Client) FetchProfile(ctx context.Context) (User, error) {
	var resp userEnvelope
	if err := c.get(ctx, "/profile", &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// UpdateProfile submits new profile fields as a multipart form. The
// image part is optional; pass "" to leave the avatar unchanged.
func (c *Client) UpdateProfile(ctx context.Context, name, email, imagePath string) (User, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("name", name); err != nil {
		return User{}, netError(err)
	}
	if err := w.WriteField("email", email); err != nil {
		return User{}, netError(err)
	}
	if imagePath != "" {
		if err := attachFile(w, "image", imagePath); err != nil {
			return User{}, netError(err)
		}
	}
	if err := w.Close(); err != nil {
		return User{}, netError(err)
	}

	var resp userEnvelope
	if err := c.do(ctx, http.MethodPost, "/user-update", w.FormDataContentType(), &buf, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// ChangePassword rotates the password of the signed-in user.
func (c *Client) ChangePassword(ctx context.Context, current, password, confirmation string) error {
	body := map[string]string{
		"current_password":      current,
		"password":              password,
		"password_confirmation": confirmation,
	}
	return c.postJSON(ctx, "/change-password", body, nil)
}

// ForgotPassword asks the server to mail a reset token.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.postJSON(ctx, "/forgot-password", map[string]string{"email": email}, nil)
}

// ResetPassword completes the recovery flow with the mailed token.
func (c *Client) ResetPassword(ctx context.Context, token, email, password, confirmation string) error {
	body := map[string]string{
		"token":                 token,
		"email":                 email,
		"password":              password,
		"password_confirmation": confirmation,
	}
	return c.postJSON(ctx, "/reset-password", body, nil)
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
