package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validation messages referenced from handler tests.
const (
	ErrRequired    = "is required"
	ErrEmail       = "must be a valid email address"
	ErrMinLength   = "must be at least %s"
	ErrMaxLength   = "must be at most %s"
	ErrAlpha       = "must contain only letters"
	ErrUnique      = "must not contain duplicate values"
	ErrDateFormat  = "must be a valid date in YYYY-MM-DD format"
	ErrPasswordFmt = "must be 8 to 25 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)"
	ErrInvalid = "is invalid"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)

	return validator
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "alpha":
		return ErrAlpha
	case "unique":
		return ErrUnique
	case "datetime":
		return ErrDateFormat
	case "password":
		return ErrPasswordFmt
	default:
		return ErrInvalid
	}
}
