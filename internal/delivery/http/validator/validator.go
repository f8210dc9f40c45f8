// Package validator adapts go-playground/validator for echo with
// donor-specific validation rules.
package validator

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Validator wraps go-playground/validator to satisfy echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator with custom donor rules registered.
func New() *Validator {
	validate := validator.New()

	// donorname: letters and spaces only.
	_ = validate.RegisterValidation("donorname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})

	// donorage: age is carried as a string; it must parse to an int in
	// the eligible donor range.
	_ = validate.RegisterValidation("donorage", func(fl validator.FieldLevel) bool {
		age, err := strconv.Atoi(fl.Field().String())
		if err != nil {
			return false
		}

		return age >= 18 && age <= 60
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
