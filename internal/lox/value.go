package lox

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a Lox runtime value. The dynamic type is always one of
//
//	nil, bool, float64, string,
//	*loxFn, *loxNativeFn, *loxClass, *loxInstance
//
// and every operation checks the type it needs explicitly.
type Value = interface{}

// stringify returns the text that "print" writes for v.
func stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// formatNumber always shows a fractional part, so 5 is written as "5.0".
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Only nil and false are falsy.
func isTruthy(value Value) bool {
	if value == nil {
		return false
	}
	if v, ok := value.(bool); ok {
		return v
	}
	return true
}

// isEqual compares values of the same dynamic type by value, callables and
// instances by identity. Values of different types are never equal.
func isEqual(lhs, rhs Value) bool {
	switch l := lhs.(type) {
	case nil:
		return rhs == nil
	case bool:
		r, ok := rhs.(bool)
		return ok && l == r
	case float64:
		r, ok := rhs.(float64)
		return ok && l == r
	case string:
		r, ok := rhs.(string)
		return ok && l == r
	default:
		return lhs == rhs
	}
}
