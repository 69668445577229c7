package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"required_if": "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"gtefield":    "{field} must not be before {param}",
	"oneof":       "{field} must be one of {param}",
	"enum":        "{field} has an unsupported value",
	"max":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"email":       "{field} must be a valid email address",
	"uuid":        "{field} must be a valid id",
	"latitude":    "{field} must be a valid latitude",
	"longitude":   "{field} must be a valid longitude",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// jsonFieldName reports fields by their json name so messages match the payload.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}

	return name
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		msg, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		msg = strings.ReplaceAll(msg, "{field}", valErr.Field())

		return strings.ReplaceAll(msg, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
