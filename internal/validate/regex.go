package validate

import (
	"fmt"
	"regexp"
	"sync"
)

// regexCache compiles patterns once and reuses them across evaluations;
// WHERE predicates run the same pattern against every matched record.
type regexCache struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
}

func (c *regexCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	if compiled, ok := c.patterns[pattern]; ok {
		c.mu.RUnlock()
		return compiled, nil
	}
	c.mu.RUnlock()

	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid regex %q: %v", ErrInvalidInput, pattern, err)
	}

	c.mu.Lock()
	c.patterns[pattern] = compiled
	c.mu.Unlock()

	return compiled, nil
}

var patterns = &regexCache{patterns: make(map[string]*regexp.Regexp)}

// Match reports whether the pattern matches anywhere in the value.
// Non-string values do not match and are reported as invalid input.
func Match(pattern string, value any) (bool, error) {
	text, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("%w: match requires a string value, got %T", ErrInvalidInput, value)
	}

	compiled, err := patterns.compile(pattern)
	if err != nil {
		return false, err
	}

	return compiled.MatchString(text), nil
}
