// Package base64 inspects data URIs ("data:<mime>;base64,<payload>").
package base64

import (
	stdbase64 "encoding/base64"
	"errors"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURI = errors.New("value is not a base64 data uri")

// GetContentType returns the mime type of a data URI, or "" when value is not one.
func GetContentType(value string) string {
	contentType, _, ok := split(value)
	if !ok {
		return ""
	}

	return contentType
}

// Decode returns the content type and decoded payload of a data URI.
func Decode(value string) (string, []byte, error) {
	contentType, payload, ok := split(value)
	if !ok {
		return "", nil, ErrNotDataURI
	}

	data, err := stdbase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err //nolint:wrapcheck
	}

	return contentType, data, nil
}

func split(value string) (string, string, bool) {
	rest, ok := strings.CutPrefix(value, dataPrefix)
	if !ok {
		return "", "", false
	}

	contentType, payload, ok := strings.Cut(rest, base64Marker)
	if !ok || contentType == "" {
		return "", "", false
	}

	return contentType, payload, true
}
