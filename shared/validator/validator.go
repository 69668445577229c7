package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"strconv"
	"strings"

	"hms/shared/base64"
	"hms/shared/constant"
	"hms/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const bytesPerKB = 1024.0

// Enum is implemented by string enums that can check their own value.
type Enum interface {
	IsValid() bool
}

var validate *val.Validate

func validateEnum(field val.FieldLevel) bool {
	if field.Field().CanInterface() {
		if enum, ok := field.Field().Interface().(Enum); ok {
			return enum.IsValid()
		}
	}

	return false
}

func validateMimetype(field val.FieldLevel) bool {
	var contentType string

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = value.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = base64.GetContentType(value)
	}

	if contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

func validateFileSize(field val.FieldLevel) bool {
	var size int64

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		size = value.Size
	case string:
		size = int64(len(value))
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return size <= int64(maxSizeMB*bytesPerKB*bytesPerKB)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]val.Func{
		"enum":        validateEnum,
		"mimetypes":   validateMimetype,
		"maxfilesize": validateFileSize,
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
