package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const roleRules = "notblank,max=64"

// newValidator returns a validator that also understands the notblank tag.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("service: register notblank validation: %v", err))
	}
	return v
}

type createIdentityRequest struct {
	Name  string   `validate:"notblank,max=128"`
	Roles []string `validate:"dive,notblank,max=64"`
}

// describe flattens validator errors into one human-readable message.
// label replaces the field name for single-value checks, which have none.
func describe(err error, label string) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe, label))
	}
	return strings.Join(msgs, "; ")
}

func fieldError(fe validator.FieldError, label string) string {
	field := strings.ToLower(fe.Field())
	if field == "" {
		field = label
	}
	switch fe.Tag() {
	case "notblank":
		return field + " must not be blank"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
