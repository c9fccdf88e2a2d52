package validate

import (
	"fmt"
	"time"
)

// datetimeLayouts are tried in order; both operands of a datetime
// comparison must parse under one of them.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// CompareDatetime compares two timestamps in any supported layout.
func CompareDatetime(value any, op Op, other string) (bool, error) {
	current, err := parseDatetime(stringify(value))
	if err != nil {
		return false, err
	}

	target, err := parseDatetime(other)
	if err != nil {
		return false, err
	}

	switch {
	case current.Before(target):
		return compareOrdering(op, -1)
	case current.After(target):
		return compareOrdering(op, 1)
	default:
		return compareOrdering(op, 0)
	}
}

func parseDatetime(text string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a recognized datetime", ErrInvalidInput, text)
}
