package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNoSession         = errors.New("no active staff session")
	ErrUnsupportedRoster = errors.New("roster must be an .xlsx or .xls spreadsheet")
	ErrUnknownField      = errors.New("field cannot be edited")
	ErrStudentNotLoaded  = errors.New("student is not in the loaded roster")
)

// InvalidInputError describes a form value rejected before any backend call
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the struct tags and reports the first failing field
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &InvalidInputError{Field: lowerFirst(fe.Field()), Reason: describe(fe.Tag(), fe.Param())}
	}
	return fmt.Errorf("validate: %w", err)
}

// validateValue checks a single dialog answer against a tag rule
func validateValue(field, value, rule string) error {
	err := validate.Var(value, rule)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &InvalidInputError{Field: field, Reason: describe(fieldErrs[0].Tag(), fieldErrs[0].Param())}
	}
	return fmt.Errorf("validate %s: %w", field, err)
}

func describe(tag, param string) string {
	switch tag {
	case "required", "required_if":
		return "value is required"
	case "email":
		return "must be a valid email"
	case "numeric":
		return "digits only"
	case "len":
		return "must be exactly " + param + " characters"
	case "min":
		return "at least " + param + " characters"
	case "max":
		return "at most " + param + " characters"
	case "oneof":
		return "one of: " + strings.ReplaceAll(param, " ", ", ")
	case "alphanum":
		return "letters and digits only"
	case "eqfield":
		return "does not match"
	default:
		return "invalid value"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
