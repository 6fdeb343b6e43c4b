package config

import (
	"fmt"
	"reflect"
	"strings"
)

type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("configuration is missing required keys: %s", strings.Join(e.Keys, ", "))
}

func (e *MissingKeysError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

type InvalidValueError struct {
	Key    string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Key, e.Reason)
}

func (e *InvalidValueError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}
