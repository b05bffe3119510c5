// Package validate wraps go-playground/validator with the project's custom
// tags and renders violations as a *domain.ValidationError.
//
// Custom tags:
//
//	phone10  exactly ten ASCII digits
//	enum     the field implements Valid() bool and reports true
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/saricare/booking-api/internal/core/domain"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type enum interface {
	Valid() bool
}

var (
	instance *validator.Validate
	once     sync.Once
)

// Validator returns the shared validator with custom tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			f := fl.Field()
			for f.Kind() == reflect.Pointer {
				if f.IsNil() {
					return false
				}
				f = f.Elem()
			}
			e, ok := f.Interface().(enum)
			return ok && e.Valid()
		})
		instance = v
	})
	return instance
}

// Struct validates s and returns a *domain.ValidationError listing every
// violated constraint, or nil.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return domain.NewValidationError(msgs...)
	}
	return err
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "Please enter a valid email address"
	case "phone10":
		return "Please enter a valid 10-digit phone number"
	case "enum":
		return fmt.Sprintf("`%v` is not a valid value for %s", derefValue(fe.Value()), field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func derefValue(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	return rv.Interface()
}
