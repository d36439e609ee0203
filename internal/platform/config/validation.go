package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator names fields by their koanf key, so a failure reads as
// "database.max_open_conns", the same path an operator sets in YAML or as
// APP_DATABASE_MAX_OPEN_CONNS.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	v.RegisterStructValidation(serverRules, ServerConfig{})
	v.RegisterStructValidation(databaseRules, DatabaseConfig{})

	return v
}

// serverRules keeps the per-request deadline inside the write timeout so the
// timeout middleware still gets to write its 504 envelope.
func serverRules(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(ServerConfig)
	if !ok || s.RequestTimeout == 0 || s.WriteTimeout == 0 {
		return
	}

	if s.RequestTimeout >= s.WriteTimeout {
		sl.ReportError(s.RequestTimeout, "request_timeout", "RequestTimeout", "shorter_than", "write_timeout")
	}
}

func databaseRules(sl validator.StructLevel) {
	d, ok := sl.Current().Interface().(DatabaseConfig)
	if !ok {
		return
	}

	if d.MaxOpenConns > 0 && d.MaxIdleConns > d.MaxOpenConns {
		sl.ReportError(d.MaxIdleConns, "max_idle_conns", "MaxIdleConns", "max_field", "max_open_conns")
	}
}

// Validate checks every field and reports all failures at once. The service
// refuses to start on an invalid configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		lines[i] = describe(fe)
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func describe(fe validator.FieldError) string {
	key := formatFieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, strings.ToLower(fe.Param()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, fe.Param())
	case "hostname_port":
		return key + " must be host:port"
	case "shorter_than":
		return fmt.Sprintf("%s must be shorter than %s", key, fe.Param())
	case "max_field":
		return fmt.Sprintf("%s must not exceed %s", key, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", key, fe.Tag())
	}
}

// formatFieldPath drops the root type name: "Config.log.file.path" becomes
// "log.file.path".
func formatFieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
