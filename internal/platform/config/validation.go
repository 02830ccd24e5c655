package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf key so messages name the same
// path an operator writes in YAML, e.g. census.copy_id_prefix.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// fieldMessages maps a validator tag to a message. %[1]s is the field path
// and %[2]s the tag parameter.
var fieldMessages = map[string]string{
	"required":      "%[1]s is required",
	"required_if":   "%[1]s is required when %[2]s",
	"min":           "%[1]s must be at least %[2]s",
	"max":           "%[1]s must be at most %[2]s",
	"oneof":         "%[1]s must be one of: %[2]s",
	"email":         "%[1]s must be an email address",
	"hostname_port": "%[1]s must be host:port",
}

// Validate checks the loaded configuration. The service and the export
// command refuse to start on invalid config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	lines := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		lines = append(lines, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	if msg, ok := fieldMessages[e.Tag()]; ok {
		return fmt.Sprintf(msg, field, e.Param())
	}

	return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
}

// formatFieldPath drops the root type from a namespace:
// "Config.census.editor_roles[0]" becomes "census.editor_roles[0]".
func formatFieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return strings.ToLower(namespace)
	}

	return path
}
