// Package selector parses select statements that shape find results: a
// projection (none, all, or named columns) plus an optional WHERE
// filter evaluated against each match's parent record.
//
// Grammar, keywords case-insensitive:
//
//	[SELECT] [columns] [WHERE key condition]
//
// columns is "*", "ALL", or a comma-separated list of field names; an
// empty statement or empty columns selects the matched values
// themselves. A condition is one of the comparison or check forms,
// e.g. eq(up), gt(2), match(^eth), contain(x), is_empty(), or a
// domain-prefixed comparison such as "version ge(6.2)".
package selector

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jacoelho/dq/internal/number"
	"github.com/jacoelho/dq/internal/record"
	"github.com/jacoelho/dq/internal/validate"
)

// ErrStatement indicates a select statement that cannot be parsed.
var ErrStatement = errors.New("selector: invalid select statement")

var (
	selectRe    = regexp.MustCompile(`(?i)^select\b`)
	whereRe     = regexp.MustCompile(`(?i)\bwhere\b`)
	conditionRe = regexp.MustCompile(`^(\w+)\((.*)\)$`)
)

// Statement is a parsed select statement. Immutable after Parse.
type Statement struct {
	columns   []string
	all       bool
	predicate func(parent any) bool
}

// IsZeroSelect reports whether matches project to their own values.
func (s *Statement) IsZeroSelect() bool {
	return !s.all && len(s.columns) == 0
}

// IsAllSelect reports whether matches project to their whole parent
// record.
func (s *Statement) IsAllSelect() bool {
	return s.all
}

// Columns returns the projected column names, in statement order.
func (s *Statement) Columns() []string {
	return s.columns
}

// Predicate returns the WHERE filter over a match's parent record, or
// nil when the statement has none. The filter treats evaluation errors
// as non-matches.
func (s *Statement) Predicate() func(parent any) bool {
	return s.predicate
}

// Parse parses a select statement. The empty statement is valid and
// selects matched values unfiltered.
func Parse(statement string) (*Statement, error) {
	text := strings.TrimSpace(statement)
	stmt := &Statement{}
	if text == "" {
		return stmt, nil
	}

	columnsText := text
	whereText := ""
	if loc := whereRe.FindStringIndex(text); loc != nil {
		columnsText = text[:loc[0]]
		whereText = strings.TrimSpace(text[loc[1]:])

		if whereText == "" {
			return nil, fmt.Errorf("%w: empty WHERE clause in %q", ErrStatement, statement)
		}
		predicate, err := parseWhere(whereText)
		if err != nil {
			return nil, err
		}
		stmt.predicate = predicate
	}

	columnsText = strings.TrimSpace(selectRe.ReplaceAllString(strings.TrimSpace(columnsText), ""))
	switch {
	case columnsText == "":
	case columnsText == "*" || strings.EqualFold(columnsText, "all"):
		stmt.all = true
	default:
		for _, column := range strings.Split(columnsText, ",") {
			column = strings.TrimSpace(column)
			if column == "" {
				return nil, fmt.Errorf("%w: empty column name in %q", ErrStatement, statement)
			}
			stmt.columns = append(stmt.columns, column)
		}
	}

	return stmt, nil
}

func parseWhere(text string) (func(parent any) bool, error) {
	parts := strings.SplitN(text, " ", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: WHERE needs a key and a condition, got %q", ErrStatement, text)
	}
	key := parts[0]

	condition, err := parseCondition(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	return func(parent any) bool {
		value, _ := record.Get(parent, key)
		return condition(value)
	}, nil
}

func parseCondition(text string) (func(value any) bool, error) {
	// Domain-prefixed comparisons carry their own operator call, e.g.
	// "version lt(6.2)". Any other leading word belongs to an operand.
	if prefix, rest, ok := strings.Cut(text, " "); ok {
		switch strings.ToLower(prefix) {
		case "version":
			return orderedCondition(rest, validate.CompareVersion)
		case "semantic_version":
			return orderedCondition(rest, validate.CompareSemanticVersion)
		case "datetime":
			return orderedCondition(rest, validate.CompareDatetime)
		}
	}

	match := conditionRe.FindStringSubmatch(text)
	if match == nil {
		return nil, fmt.Errorf("%w: unrecognized condition %q", ErrStatement, text)
	}
	name, operand := strings.ToLower(match[1]), match[2]

	if operand == "" {
		if check, ok := validate.Custom(name); ok {
			return check, nil
		}
	}

	switch name {
	case "match", "not_match":
		negated := name == "not_match"
		return func(value any) bool {
			matched, err := validate.Match(operand, value)
			return err == nil && matched != negated
		}, nil
	case "contain", "not_contain":
		negated := name == "not_contain"
		return func(value any) bool {
			matched, err := validate.Contain(value, operand)
			return err == nil && matched != negated
		}, nil
	case "belong", "not_belong":
		negated := name == "not_belong"
		return func(value any) bool {
			matched, err := validate.Belong(value, operand)
			return err == nil && matched != negated
		}, nil
	}

	op, err := validate.ParseOp(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unrecognized condition %q", ErrStatement, text)
	}

	if _, numeric := number.CoerceFloat64(operand); numeric {
		return func(value any) bool {
			matched, err := validate.CompareNumber(value, op, operand)
			return err == nil && matched
		}, nil
	}

	if op != validate.OpEQ && op != validate.OpNE {
		return nil, fmt.Errorf("%w: %q requires a numeric operand, got %q", ErrStatement, op, operand)
	}
	return func(value any) bool {
		matched, err := validate.Compare(value, op, operand)
		return err == nil && matched
	}, nil
}

func orderedCondition(text string, compare func(any, validate.Op, string) (bool, error)) (func(value any) bool, error) {
	match := conditionRe.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return nil, fmt.Errorf("%w: unrecognized comparison %q", ErrStatement, text)
	}

	op, err := validate.ParseOp(match[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatement, err)
	}
	operand := match[2]

	return func(value any) bool {
		matched, err := compare(value, op, operand)
		return err == nil && matched
	}, nil
}
