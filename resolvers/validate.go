package resolvers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateInput turns validation failures into field-scoped errors so
// malformed input is returned inline, never thrown.
func validateInput(input interface{}) []FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fieldError("", "Invalid input.")
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		out = append(out, FieldError{
			Field:   lowerFirst(fieldErr.Field()),
			Message: validationMessage(fieldErr),
		})
	}
	return out
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "Title":
		return "Title must be between 5-100 characters"
	case "Body":
		return "Body must be at least 10 characters"
	case "Tags":
		return "Tags must be between 1-20 strings of at most 20 characters"
	case "Name":
		return "Name must be at least 2 characters"
	case "Duration":
		return "Duration cannot be negative"
	default:
		return fmt.Sprintf("%s is invalid", lowerFirst(fieldErr.Field()))
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
