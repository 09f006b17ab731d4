package common

import (
	"github.com/mwolter/tripscout/internal/validate"
)

// Argument extraction helpers. Arguments arrive as a map of decoded JSON
// values; every helper checks the wire type strictly, so a numeric-looking
// string is rejected rather than coerced.

// RequiredStringArg returns the named argument as a string.
func RequiredStringArg(args map[string]interface{}, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", &validate.Error{Field: name, Reason: "required"}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &validate.Error{Field: name, Reason: "must be a string"}
	}
	return value, nil
}

// OptionalStringArg returns the named argument as a string, or "" when the
// argument is absent.
func OptionalStringArg(args map[string]interface{}, name string) (string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", &validate.Error{Field: name, Reason: "must be a string"}
	}
	return value, nil
}

// OptionalNumberArg returns the named argument as a float, or nil when the
// argument is absent. JSON numbers decode as float64; anything else is a
// validation error.
func OptionalNumberArg(args map[string]interface{}, name string) (*float64, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}
	value, ok := raw.(float64)
	if !ok {
		return nil, &validate.Error{Field: name, Reason: "must be a number"}
	}
	return &value, nil
}

// OptionalIntArg returns the named argument as an int, or nil when the
// argument is absent.
func OptionalIntArg(args map[string]interface{}, name string) (*int, error) {
	value, err := OptionalNumberArg(args, name)
	if err != nil || value == nil {
		return nil, err
	}
	intValue := int(*value)
	return &intValue, nil
}
