package lookup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jacoelho/dq/internal/validate"
	"github.com/jacoelho/dq/internal/wildcard"
)

// directiveRe recognizes embedded match directives such as _text(...),
// _iwildcard(...) or _regex(...). A payload runs to the next ')', so
// several directives can appear on one side.
var directiveRe = regexp.MustCompile(`_(i?)(text|wildcard|regex)\(([^)]+)\)`)

// Bare alternate forms, tried in order against the lowercased side when
// no directive is present.
var (
	customRe        = regexp.MustCompile(`^(is_(?:not_)?(?:empty|mac_address|ip_address|ipv4_address|ipv6_address|true|false|uuid))\(\)$`)
	numberCompareRe = regexp.MustCompile(`^(lt|le|gt|ge|eq|ne)\(([0-9]*\.?[0-9]+)\)$`)
	stringCompareRe = regexp.MustCompile(`^(eq|ne)\((.*[^0-9].*)\)$`)
)

// side is the outcome of parsing one half of a lookup expression.
type side struct {
	pattern   *regexp.Regexp
	predicate func(value any) bool
}

func parseSide(text string) (side, error) {
	directives := directiveRe.FindAllStringSubmatchIndex(text, -1)
	if len(directives) == 0 {
		return parseBare(text), nil
	}

	var (
		fragments  []string
		ignoreCase bool
	)
	end := 0
	for _, directive := range directives {
		fragments = append(fragments, regexp.QuoteMeta(text[end:directive[0]]))

		options := text[directive[2]:directive[3]]
		method := text[directive[4]:directive[5]]
		payload := text[directive[6]:directive[7]]

		fragment, err := directiveFragment(method, payload)
		if err != nil {
			return side{}, err
		}
		fragments = append(fragments, fragment)
		ignoreCase = ignoreCase || options == "i"
		end = directive[1]
	}
	fragments = append(fragments, regexp.QuoteMeta(text[end:]))

	pattern := strings.Join(fragments, "")
	if pattern == "" {
		return side{}, fmt.Errorf("%w: %q produced no pattern", ErrCompile, text)
	}

	// Anchor unless the side's own edges already carry anchors, e.g.
	// from a leading or trailing regex directive.
	if pattern[0] != '^' {
		pattern = "^" + pattern
	}
	if pattern[len(pattern)-1] != '$' {
		pattern += "$"
	}
	if ignoreCase {
		pattern = "(?i)" + pattern
	}

	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return side{}, fmt.Errorf("%w: %q composed invalid pattern %q: %v", ErrCompile, text, pattern, err)
	}

	return side{pattern: compiled}, nil
}

func directiveFragment(method, payload string) (string, error) {
	switch method {
	case "text":
		return regexp.QuoteMeta(payload), nil
	case "wildcard":
		return wildcard.Convert(payload)
	default: // regex, the only method left admitted by directiveRe
		return payload, nil
	}
}

// parseBare interprets a side with no directives: one of the bare
// predicate or comparison call forms, or a verbatim literal. The
// alternate forms match case-insensitively, and a comparison operand is
// taken from the lowercased text.
func parseBare(text string) side {
	lowered := strings.ToLower(text)

	if match := customRe.FindStringSubmatch(lowered); match != nil {
		if check, ok := validate.Custom(match[1]); ok {
			return side{predicate: check}
		}
	}

	if match := numberCompareRe.FindStringSubmatch(lowered); match != nil {
		op, other := validate.Op(match[1]), match[2]
		return side{predicate: func(value any) bool {
			matched, err := validate.CompareNumber(value, op, other)
			return err == nil && matched
		}}
	}

	if match := stringCompareRe.FindStringSubmatch(lowered); match != nil {
		op, other := validate.Op(match[1]), match[2]
		return side{predicate: func(value any) bool {
			matched, err := validate.Compare(value, op, other)
			return err == nil && matched
		}}
	}

	return side{pattern: regexp.MustCompile("^" + regexp.QuoteMeta(text) + "$")}
}
