package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a custom validator ensuring two fields are not both set.
// Field names in messages use the mapstructure tag, which matches the flag name.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} and {1} are mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", splitSize)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks that the field and the field named by the parameter are not both set.
// Strings count as set when non-empty, booleans when true.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !other.IsValid() || field.Kind() != other.Kind() {
		return true
	}

	switch field.Kind() { //nolint:exhaustive // other kinds are not compared
	case reflect.String:
		return field.String() == "" || other.String() == ""
	case reflect.Bool:
		return !field.Bool() || !other.Bool()
	default:
		return true
	}
}
