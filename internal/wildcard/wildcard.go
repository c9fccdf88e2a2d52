// Package wildcard translates shell-style wildcard patterns into
// regular expression fragments.
package wildcard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrConversion indicates a wildcard pattern that does not translate
// into a valid regular expression.
var ErrConversion = errors.New("wildcard: cannot convert to regular expression")

// expander rewrites wildcard tokens in a single pass, so the regex
// metacharacters it emits are never re-escaped by a later rule.
var expander = strings.NewReplacer(
	".", `\.`,
	"+", `\+`,
	"?", ".",
	"*", ".*",
	"[!", "[^",
)

// Convert translates a wildcard pattern into an unanchored regular
// expression fragment.
//
// Supported tokens:
//
//	?    matches exactly one character
//	*    matches zero or more characters
//	[ ]  character class, passed through
//	[!]  negated character class
//
// Literal '.' and '+' are escaped so they keep their plain meaning.
func Convert(pattern string) (string, error) {
	return convert(pattern, false)
}

// ConvertAnchored behaves like Convert but wraps the result in ^ and $
// so the expression matches whole strings only.
func ConvertAnchored(pattern string) (string, error) {
	return convert(pattern, true)
}

func convert(pattern string, anchored bool) (string, error) {
	expanded := expander.Replace(pattern)
	if anchored {
		expanded = "^" + expanded + "$"
	}

	if _, err := regexp.Compile(expanded); err != nil {
		return "", fmt.Errorf("%w: %q expanded to %q: %v", ErrConversion, pattern, expanded, err)
	}

	return expanded, nil
}
