// Package codes normalizes identifier-like values into the restricted
// character set the platform accepts, and derives scope identifiers.
package codes

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxCodeLength is the platform's ceiling on code identifiers.
const MaxCodeLength = 64

// Known substitutions applied before the residual strip, so meaningful
// characters keep a readable trace in the resulting code.
var codeSubstitutions = []struct{ from, to string }{
	{"&", "and"},
	{"%", "Percentage"},
	{"+", "Plus"},
	{".", "_"},
}

var invalidCodeChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)

// ErrUntextual is returned when a value has no usable textual form.
var ErrUntextual = errors.New("codes: value cannot be converted to a string")

// MakeCodeFriendly normalizes an arbitrary code-like value into an
// identifier the platform accepts. Known substitutions run first, then
// any remaining character outside the allowed set is stripped. Lists
// collapse by concatenating their normalized elements; decimals replace
// the point with an underscore.
func MakeCodeFriendly(raw any) (string, error) {
	text, err := codeText(raw)
	if err != nil {
		return "", err
	}
	for _, sub := range codeSubstitutions {
		text = strings.ReplaceAll(text, sub.from, sub.to)
	}
	text = invalidCodeChars.ReplaceAllString(text, "")
	if len(text) > MaxCodeLength {
		return "", fmt.Errorf("codes: %q exceeds the %d character limit", text, MaxCodeLength)
	}
	return text, nil
}

func codeText(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []byte:
		return "", ErrUntextual
	case []string:
		return strings.Join(v, ""), nil
	case []any:
		var builder strings.Builder
		for _, item := range v {
			text, err := codeText(item)
			if err != nil {
				return "", err
			}
			builder.WriteString(text)
		}
		return builder.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", ErrUntextual
	default:
		return fmt.Sprint(v), nil
	}
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// CamelToSnake converts a camelCase attribute name to snake_case,
// matching the naming the platform document uses for model properties
// against the attribute paths mappings are written in.
func CamelToSnake(name string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(name, "${1}_${2}"))
}
