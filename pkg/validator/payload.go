package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var (
	// ErrValidationFailed is wrapped by every error returned from Validate
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilPayload indicates no payload was supplied
	ErrNilPayload = errors.New("payload cannot be empty")
)

// FieldError describes the first field that failed validation
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e *FieldError) Error() string {
	switch e.Rule {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", e.Field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field, e.Param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field, e.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field, e.Param)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", e.Field, toSnakeCase(e.Param))
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

func (e *FieldError) Unwrap() error {
	return ErrValidationFailed
}

// PayloadValidator validates request payloads against their validate tags
type PayloadValidator struct {
	validate *playground.Validate
}

// NewPayloadValidator creates a new payload validator instance
func NewPayloadValidator() *PayloadValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}

	return &PayloadValidator{validate: v}
}

// Validate checks payload and returns the first failing field as a *FieldError
func (v *PayloadValidator) Validate(payload interface{}) error {
	if payload == nil {
		return ErrNilPayload
	}
	if rv := reflect.ValueOf(payload); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return ErrNilPayload
	}

	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors playground.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}

	return fmt.Errorf("%w: %v", ErrValidationFailed, err)
}

// notBlank rejects strings that are empty after trimming
func notBlank(fl playground.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
