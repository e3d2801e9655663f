package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrInvalidSelection struct {
	error
	Fields []string
}

func NewErrInvalidSelection(fields []string, format string, args ...any) *ErrInvalidSelection {
	return &ErrInvalidSelection{error: fmt.Errorf(format, args...), Fields: fields}
}

// translate turns the validator field errors into a single readable message.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
		msgs = append(msgs, describe(fe))
	}
	return NewErrInvalidSelection(fields, "invalid selection: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte", "lte", "gt":
		return fmt.Sprintf("%s must be %s %s", fe.Field(), bounds[fe.Tag()], fe.Param())
	default:
		return fmt.Sprintf("unknown %s %v", fe.Field(), fe.Value())
	}
}

var bounds = map[string]string{
	"gte": "at least",
	"lte": "at most",
	"gt":  "greater than",
}
