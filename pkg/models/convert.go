package models

import (
	"fmt"
	"strconv"
)

// asString coerces a resolved attribute value into a string.
func asString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot use %T as a string", value)
	}
}

// asFloat coerces a resolved attribute value into a float64.
func asFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a number", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("cannot use %T as a number", value)
	}
}

// as asserts a structural or nested attribute value to its concrete
// type.
func as[T any](value any) (T, error) {
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cannot use %T as %T", value, zero)
	}
	return typed, nil
}

// asSlice coerces a nested-list attribute value: either an already
// typed slice, or a []any of constructed elements (values or
// pointers).
func asSlice[T any](value any) ([]T, error) {
	switch v := value.(type) {
	case []T:
		return v, nil
	case []any:
		out := make([]T, 0, len(v))
		for _, item := range v {
			switch element := item.(type) {
			case T:
				out = append(out, element)
			case *T:
				out = append(out, *element)
			default:
				var zero T
				return nil, fmt.Errorf("cannot use %T as %T element", item, zero)
			}
		}
		return out, nil
	default:
		var zero []T
		return nil, fmt.Errorf("cannot use %T as %T", value, zero)
	}
}
