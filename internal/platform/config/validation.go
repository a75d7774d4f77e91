package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf keys, so messages name the YAML
// path or the APP_ variable an operator has to fix.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("koanf"); name != "" && name != "-" {
			return name
		}

		return fld.Name
	})

	return v
}

// fieldMessages maps validation tags to message templates. {field} is the
// koanf key and {param} the rule parameter.
var fieldMessages = map[string]string{
	"required":           "{field} is required",
	"required_if":        "{field} is required when {param}",
	"min":                "{field} must be at least {param}",
	"max":                "{field} must be at most {param}",
	"oneof":              "{field} must be one of: {param}",
	"url":                "{field} must be a valid URL",
	"startswith":         `{field} must start with "{param}"`,
	"bcp47_language_tag": "{field} must be a BCP 47 language tag",
}

// Validate checks the loaded configuration. The service refuses to start
// when it fails; every violation is listed, one per line.
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
	tmpl, ok := fieldMessages[e.Tag()]
	if !ok {
		tmpl = "{field} failed validation: " + e.Tag()
	}

	return strings.NewReplacer(
		"{field}", formatFieldPath(e.Namespace()),
		"{param}", e.Param(),
	).Replace(tmpl)
}

// formatFieldPath drops the root type from a namespace such as
// "Config.services.quotes.base_url".
func formatFieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}

	return namespace
}
