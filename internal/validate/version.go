package validate

import (
	"fmt"

	version "github.com/hashicorp/go-version"
)

// CompareVersion compares two version strings under loose parsing rules
// ("1.2", "v1.2.3-beta" and similar all parse).
func CompareVersion(value any, op Op, other string) (bool, error) {
	current, err := version.NewVersion(stringify(value))
	if err != nil {
		return false, fmt.Errorf("%w: version %v: %v", ErrInvalidInput, value, err)
	}

	target, err := version.NewVersion(other)
	if err != nil {
		return false, fmt.Errorf("%w: version operand %q: %v", ErrInvalidInput, other, err)
	}

	return compareOrdering(op, current.Compare(target))
}

// CompareSemanticVersion compares two versions under strict semantic
// versioning rules.
func CompareSemanticVersion(value any, op Op, other string) (bool, error) {
	current, err := version.NewSemver(stringify(value))
	if err != nil {
		return false, fmt.Errorf("%w: semantic version %v: %v", ErrInvalidInput, value, err)
	}

	target, err := version.NewSemver(other)
	if err != nil {
		return false, fmt.Errorf("%w: semantic version operand %q: %v", ErrInvalidInput, other, err)
	}

	return compareOrdering(op, current.Compare(target))
}

func compareOrdering(op Op, ordering int) (bool, error) {
	switch op {
	case OpLT:
		return ordering < 0, nil
	case OpLE:
		return ordering <= 0, nil
	case OpGT:
		return ordering > 0, nil
	case OpGE:
		return ordering >= 0, nil
	case OpEQ:
		return ordering == 0, nil
	case OpNE:
		return ordering != 0, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownOp, op)
}
