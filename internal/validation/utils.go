package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/deppfellow/project-manager/internal/errs"
	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a field issue that validator tags cannot express.
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

// newValidator reports fields by the name the client used: the json key,
// or the path or query parameter name for fields bound from the URL.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})
	return v
}

// Struct runs the validator tags on v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds the request into payload and validates it,
// returning a 400 *errs.HTTPError on either failure.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		if msg, fieldErrors := extractValidationError(err); fieldErrors != nil {
			return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
		}
		return err
	}

	return nil
}

func bindErrorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

// FromModelError converts model validation failures into a 400 HTTPError.
// Any other error is returned unchanged.
func FromModelError(err error) error {
	if err == nil {
		return nil
	}

	var ozzoErrs ozzo.Errors
	if !errors.As(err, &ozzoErrs) {
		return err
	}

	_, fieldErrors := extractValidationError(ozzoErrs)
	return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors, nil)
}

// extractValidationError returns nil field errors when err is not a
// validation failure this package knows about.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var ozzoErrs ozzo.Errors
	var customErrs CustomValidationErrors
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &ozzoErrs):
		fields := make([]string, 0, len(ozzoErrs))
		for field := range ozzoErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: field,
				Error: ozzoErrs[field].Error(),
			})
		}
	case errors.As(err, &customErrs):
		for _, e := range customErrs {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
	case errors.As(err, &validationErrors):
		for _, fe := range validationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: fe.Field(),
				Error: tagMessage(fe),
			})
		}
	default:
		return "", nil
	}

	return "Validation failed", fieldErrors
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "gtefield":
		return fmt.Sprintf("must not be before %s", lowerFirst(fe.Param()))
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
}

// lowerFirst turns a Go field name like StartDate into startDate.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
