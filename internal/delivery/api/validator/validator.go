// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"winespa/internal/domain/entity"
	"winespa/internal/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports JSON field names and knows the domain enums.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = validate.RegisterValidation("account_kind", func(fl validator.FieldLevel) bool {
		return entity.AccountKind(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("document_type", func(fl validator.FieldLevel) bool {
		return entity.DocumentType(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return entity.Status(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseClockTime(fl.Field().String())

		return err == nil
	})

	return &Validator{validate: validate}
}

// Validate runs the struct's validate tags.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// FieldErrors flattens validation failures into field -> rule pairs for the error response.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}

	return fields
}
