package cli

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// Client-side form validation mirrors what the server enforces so
// obvious mistakes fail before a round trip. Server-side validation
// remains authoritative; 422 responses are still rendered per field.

type loginForm struct {
	Email    string
	Password string
}

func (f loginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}

type registerForm struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

func (f registerForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(2, 64)),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&f.Confirm, validation.Required, validation.By(matches(f.Password))),
	)
}

type changePasswordForm struct {
	Current  string
	Password string
	Confirm  string
}

func (f changePasswordForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Current, validation.Required),
		validation.Field(&f.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&f.Confirm, validation.Required, validation.By(matches(f.Password))),
	)
}

type resetPasswordForm struct {
	Token    string
	Email    string
	Password string
	Confirm  string
}

func (f resetPasswordForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Token, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&f.Confirm, validation.Required, validation.By(matches(f.Password))),
	)
}

func matches(password string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != password {
			return errors.New("does not match the password")
		}
		return nil
	}
}

// reportFormErrors prints one line per failed field, in field order.
func reportFormErrors(err error) {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		logger.Errorf("Invalid input: %v", err)
		return
	}
	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		logger.Errorf("%s: %v", field, fieldErrs[field])
	}
}
