// Package validate implements the value checks and comparisons that
// lookup expressions and select WHERE clauses bind against.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jacoelho/dq/internal/number"
)

var (
	ErrInvalidInput = errors.New("validate: invalid input")
	ErrUnknownOp    = errors.New("validate: unknown operator")
)

// Op is a comparison operator name.
type Op string

const (
	OpLT Op = "lt"
	OpLE Op = "le"
	OpGT Op = "gt"
	OpGE Op = "ge"
	OpEQ Op = "eq"
	OpNE Op = "ne"
)

// ParseOp validates an operator name, accepting any case.
func ParseOp(input string) (Op, error) {
	op := Op(strings.ToLower(input))
	switch op {
	case OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, input)
}

// CompareNumber compares a numeric value against a numeric operand.
// Numeric strings on either side are coerced; booleans are not numbers.
func CompareNumber(value any, op Op, other string) (bool, error) {
	current, ok := number.CoerceFloat64(value)
	if !ok {
		return false, fmt.Errorf("%w: %v (%T) is not numeric", ErrInvalidInput, value, value)
	}

	target, ok := number.CoerceFloat64(other)
	if !ok {
		return false, fmt.Errorf("%w: operand %q is not numeric", ErrInvalidInput, other)
	}

	return compareFloats(op, current, target)
}

// Compare performs a generic equality comparison on the stringified
// value. Only eq and ne are meaningful for non-numeric operands.
func Compare(value any, op Op, other string) (bool, error) {
	switch op {
	case OpEQ:
		return stringify(value) == other, nil
	case OpNE:
		return stringify(value) != other, nil
	}
	return false, fmt.Errorf("%w: %q requires a numeric operand", ErrUnknownOp, op)
}

// Contain reports whether the value contains other: substring match for
// strings, membership for sequences.
func Contain(value any, other string) (bool, error) {
	if text, ok := value.(string); ok {
		return strings.Contains(text, other), nil
	}

	reflected := reflect.ValueOf(value)
	if reflected.IsValid() && (reflected.Kind() == reflect.Slice || reflected.Kind() == reflect.Array) {
		for i := 0; i < reflected.Len(); i++ {
			if stringify(reflected.Index(i).Interface()) == other {
				return true, nil
			}
		}
		return false, nil
	}

	return false, fmt.Errorf("%w: contain requires a string or sequence value, got %T", ErrInvalidInput, value)
}

// Belong reports whether the value occurs inside other.
func Belong(value any, other string) (bool, error) {
	text, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("%w: belong requires a string value, got %T", ErrInvalidInput, value)
	}

	return strings.Contains(other, text), nil
}

func compareFloats(op Op, a, b float64) (bool, error) {
	switch op {
	case OpLT:
		return a < b, nil
	case OpLE:
		return a <= b, nil
	case OpGT:
		return a > b, nil
	case OpGE:
		return a >= b, nil
	case OpEQ:
		return a == b, nil
	case OpNE:
		return a != b, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

func stringify(value any) string {
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprint(value)
}
