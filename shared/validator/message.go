package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"max":      "{field} must be at most {param} characters",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"ymd":      "{field} must be a date in YYYY-MM-DD format",
}

// message turns the first failed rule into a client facing sentence keyed by the JSON field name.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error()
	}

	first := valErrors[0]

	template, ok := messages[first.Tag()]
	if !ok {
		return first.Field() + " is invalid"
	}

	return strings.NewReplacer("{field}", first.Field(), "{param}", first.Param()).Replace(template)
}
