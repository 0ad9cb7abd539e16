// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// It is used to check user supplied addresses, explorer records decoded from
// untrusted JSON and the application configuration. The package is initialized
// automatically and safe to use directly.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed heads the joined error returned for any failed rule, so
// callers can match it with errors.Is whatever the number of failing fields.
var ErrValidationFailed = errors.New("validation failed")

var validator *gvalidator.Validate

// errStringFormat describes one failing field, e.g.
// "'Address': value '0x12' does not meet the requirements for the 'eth_addr' validation".
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError joins ErrValidationFailed with one message per failing field.
// Errors that are not validation errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		if field == "" {
			// Var has no struct field to name.
			field = "value"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, fieldErr.Value(), fieldErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	type wireRecord struct {
//	    From string `validate:"required,eth_addr"`
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var validates a single value against a tag expression such as "required,eth_addr".
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
