package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/padeltour/academia-api/internal/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrReferenceNotFound = errors.New("referenced document not found")
	ErrValidation        = errors.New("validation failed")
	ErrMalformedPrice    = errors.New("malformed tour price")
)

// ReferenceNotFoundError names the missing document a write depended on.
type ReferenceNotFoundError struct {
	Resource string
	ID       string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// validate runs the struct tags and folds any failure into ErrValidation with a
// message a client can act on.
func validate(v any) error {
	err := models.Validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
