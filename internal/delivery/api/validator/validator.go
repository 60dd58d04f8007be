// Package validator adapts go-playground/validator to echo and registers
// the booking dashboard's field formats.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"boothly/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator implements echo.Validator.
type Validator struct {
	v *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	mustRegister(v, "date", layoutValidation(entity.DateLayout))
	mustRegister(v, "clock", layoutValidation(entity.ClockLayout))
	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "booking_status", func(fl validator.FieldLevel) bool {
		return entity.BookingStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "weekday", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseWeekday(fl.Field().String())
		return ok
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func layoutValidation(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) != len(layout) {
			return false
		}
		_, err := time.Parse(layout, value)

		return err == nil
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.v.Struct(i)
}

// Details maps each failing field to the rule it broke.
// It returns nil when err carries no field errors.
func Details(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	details := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		// Drop the request struct name, keep the JSON path below it
		field := fieldErr.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		details[field] = fieldErr.Tag()
	}

	return details
}
