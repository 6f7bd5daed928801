package utils

import (
	jsoniter "github.com/json-iterator/go"
	"strings"
)

//Stringify returns a pointer to the given string.
func Stringify(s string) *string {
	return &s
}

//Boolify returns a pointer to the given bool.
func Boolify(b bool) *bool {
	return &b
}

//StringValue dereferences an optional string, empty when absent.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

//GetBytes marshals the given value, returning nil when it can't be encoded.
func GetBytes(v interface{}) []byte {
	bytes, err := jsoniter.Marshal(v)
	if err != nil {
		return nil
	}
	return bytes
}

//MaskSecret hides all but the last four characters of a credential.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
