// Package lookup compiles lookup expressions of the form LEFT[=RIGHT],
// where the left side matches structural index labels and the optional
// right side matches or tests values.
package lookup

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrCompile indicates a lookup expression with no interpretable pattern.
var ErrCompile = errors.New("lookup: cannot compile expression")

// Lookup is a compiled lookup expression. Only the first '=' separates
// the index expression from the value expression. A Lookup is immutable
// once compiled and safe to share between readers.
type Lookup struct {
	expression string
	left       *regexp.Regexp
	right      valueMatcher
}

// valueMatcher is the right-side variant: an anchored pattern over
// string values, or a predicate over raw values.
type valueMatcher interface {
	matches(value any) bool
}

type patternMatcher struct {
	re *regexp.Regexp
}

func (m patternMatcher) matches(value any) bool {
	text, ok := value.(string)
	if !ok {
		return false
	}
	return m.re.MatchString(text)
}

type predicateMatcher struct {
	check func(value any) bool
}

func (m predicateMatcher) matches(value any) bool {
	return m.check(value)
}

// Compile parses a lookup expression. An expression without '='
// constrains index labels only and accepts any value.
func Compile(expression string) (*Lookup, error) {
	leftText, rightText, hasRight := strings.Cut(expression, "=")

	left, err := parseSide(leftText)
	if err != nil {
		return nil, err
	}
	if left.predicate != nil {
		return nil, fmt.Errorf("%w: left side %q must match index labels, not values", ErrCompile, leftText)
	}

	compiled := &Lookup{expression: expression, left: left.pattern}
	if !hasRight {
		return compiled, nil
	}

	right, err := parseSide(rightText)
	if err != nil {
		return nil, err
	}
	if right.predicate != nil {
		compiled.right = predicateMatcher{check: right.predicate}
	} else {
		compiled.right = patternMatcher{re: right.pattern}
	}

	return compiled, nil
}

// MatchesIndex reports whether an index label satisfies the left
// pattern. Anchoring comes from the pattern itself.
func (l *Lookup) MatchesIndex(label string) bool {
	return l.left.MatchString(label)
}

// MatchesValue reports whether a raw value satisfies the right side.
// A lookup without one accepts any value.
func (l *Lookup) MatchesValue(value any) bool {
	if l.right == nil {
		return true
	}
	return l.right.matches(value)
}

// HasValueExpr reports whether the expression carries a right side.
func (l *Lookup) HasValueExpr() bool {
	return l.right != nil
}

// String returns the original expression.
func (l *Lookup) String() string {
	return l.expression
}
