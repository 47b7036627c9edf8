// Package validator adapts go-playground/validator to Echo's Validator
// interface and registers the password strength rule.
package validator

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
)

// echoValidator wraps a validator.Validate instance for Echo.
type echoValidator struct {
	validate *validator.Validate
	policy   *config.PasswordStrengthConfig
}

// New builds the request validator. The "strongpassword" rule enforces
// the configured password policy; with no policy configured only the
// minimum length of 8 applies.
func New(cfg *config.Config) echo.Validator {
	v := &echoValidator{
		validate: validator.New(),
		policy:   nil,
	}
	if cfg != nil {
		v.policy = cfg.PasswordStrength
	}

	// Registration can only fail for a blank tag or nil fn.
	_ = v.validate.RegisterValidation("strongpassword", v.strongPassword)

	return v
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}

const defaultMinPasswordLength = 8

func (v *echoValidator) strongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	minLength := defaultMinPasswordLength
	if v.policy != nil && v.policy.MinLength > 0 {
		minLength = v.policy.MinLength
	}
	// Length is measured in characters, not UTF-8 bytes.
	if utf8.RuneCountInString(password) < minLength {
		return false
	}

	if v.policy == nil {
		return true
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if v.policy.RequireUppercase && !hasUpper {
		return false
	}
	if v.policy.RequireLowercase && !hasLower {
		return false
	}
	if v.policy.RequireNumbers && !hasNumber {
		return false
	}
	if v.policy.RequireSpecialChars && !hasSpecial {
		return false
	}

	return true
}
