// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or value ranges) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/deppfellow/category-service/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request and response types that know how to validate themselves.
//
// Typical pattern:
// - Define a struct with validator tags (`validate:"required,max=256"`)
// - Implement Validate() error that calls validation.Struct(v)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

// newValidator reports fields by their wire name: json, then query, then param.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Struct validates v against its `validate` tags with the shared validator.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates the struct from path params, query (GET/DELETE) and body.
// 2) payload.Validate() applies validation rules.
// 3) Returns *errs.HTTPError (400) with field-level errors if either step fails.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindError converts an echo binder failure into a 400 without leaking decoder internals.
func bindError(err error) error {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
			Field:   bindingErr.Field,
			Message: "has an invalid value",
		}}, nil)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be a %s", typeErr.Type.Kind()),
		}}, nil)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
			Field:   "",
			Message: fmt.Sprintf("%q is not a valid number", numErr.Num),
		}}, nil)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
		return errs.NewBadRequestError("Unsupported content type", true, nil, nil, nil)
	}

	return errs.NewBadRequestError("Invalid request body", true, nil, nil, nil)
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// ExtractValidationError is the exported form used for response-side validation.
func ExtractValidationError(err error) (string, []errs.FieldError) {
	return extractValidationError(err)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, e := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field:   e.Field,
				Message: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "", Message: err.Error()}}
	}

	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field:   strings.ToLower(e.Field()),
			Message: tagMessage(e),
		})
	}

	return "Validation failed", fieldErrors
}

func tagMessage(err validator.FieldError) string {
	isString := err.Kind() == reflect.String

	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gt":
		if err.Param() == "0" {
			return "must be a positive number"
		}
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", err.Param())

	case "lte":
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "dive":
		return "some items are invalid"

	default:
		field := strings.ToLower(err.Field())
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", field, err.Tag())
	}
}
