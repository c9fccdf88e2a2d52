// Package query is the entry point for querying decoded JSON or YAML
// documents: lookup expressions with select statements, positional and
// slice indexing, and standard JSONPath.
package query

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/theory/jsonpath"

	"github.com/jacoelho/dq/internal/lookup"
	"github.com/jacoelho/dq/internal/record"
	"github.com/jacoelho/dq/internal/selector"
	"github.com/jacoelho/dq/internal/tree"
)

var (
	// ErrNotIndexable indicates indexing into scalar data.
	ErrNotIndexable = errors.New("query: data is not indexable")
	// ErrIndex indicates a sequence index that is out of range or
	// cannot be parsed as a position or slice expression.
	ErrIndex = errors.New("query: invalid index")
	// ErrPath indicates a JSONPath expression that does not parse.
	ErrPath = errors.New("query: invalid JSONPath expression")
)

var bareIntRe = regexp.MustCompile(`^-?[0-9]+$`)

// Query wraps decoded document data.
type Query struct {
	Data any
}

// New wraps data for querying.
func New(data any) *Query {
	return &Query{Data: data}
}

// IsMap reports whether the data is map-shaped.
func (q *Query) IsMap() bool {
	return record.IsMap(q.Data)
}

// IsList reports whether the data is a sequence.
func (q *Query) IsList() bool {
	return isSequence(q.Data)
}

// Len returns the number of entries or elements, 0 for scalar data.
func (q *Query) Len() int {
	if count, ok := record.Len(q.Data); ok {
		return count
	}
	if isSequence(q.Data) {
		return reflect.ValueOf(q.Data).Len()
	}
	return 0
}

// Keys returns map keys in record order, nil for non-map data.
func (q *Query) Keys() []string {
	keys, _ := record.Keys(q.Data)
	return keys
}

// Values returns map entry values in record order, or sequence
// elements. Nil for scalar data.
func (q *Query) Values() []any {
	if entries, ok := record.Entries(q.Data); ok {
		values := make([]any, 0, len(entries))
		for _, entry := range entries {
			values = append(values, entry.Value)
		}
		return values
	}
	if isSequence(q.Data) {
		return sequenceItems(q.Data)
	}
	return nil
}

// Items returns map entries in record order, nil for non-map data.
func (q *Query) Items() []record.Entry {
	entries, _ := record.Entries(q.Data)
	return entries
}

// Lookup resolves an index against the data, surfacing resolution
// failures. Map data treats the index as a key and yields nil when it
// is absent; sequence data accepts a position ("2", "-1") or a slice
// expression ("1:3", "::-1"). Scalar data is not indexable.
func (q *Query) Lookup(index string) (any, error) {
	return q.resolve(index, nil)
}

// Get resolves an index like Lookup but converts every failure, and a
// missing map key, into fallback.
func (q *Query) Get(index string, fallback any) any {
	value, err := q.resolve(index, fallback)
	if err != nil {
		return fallback
	}
	return value
}

// At resolves an integer position the way Lookup resolves its string
// form: sequence positions may be negative, map data treats the
// position as a key.
func (q *Query) At(position int) (any, error) {
	return q.resolve(strconv.Itoa(position), nil)
}

func (q *Query) resolve(index string, miss any) (any, error) {
	if isSequence(q.Data) {
		return sequenceLookup(sequenceItems(q.Data), index)
	}
	if record.IsMap(q.Data) {
		value, ok := record.Get(q.Data, index)
		if !ok {
			return miss, nil
		}
		return value, nil
	}
	return nil, fmt.Errorf("%w: cannot index into %T", ErrNotIndexable, q.Data)
}

// Find runs a lookup expression over the data and projects the matches
// through a select statement. An empty statement yields the matched
// values themselves; no matches yield an empty, non-nil result.
func (q *Query) Find(lookupExpr, selectStmt string) ([]any, error) {
	compiled, err := lookup.Compile(lookupExpr)
	if err != nil {
		return nil, err
	}
	stmt, err := selector.Parse(selectStmt)
	if err != nil {
		return nil, err
	}

	matches := tree.Find(tree.Build(q.Data), compiled)

	return project(matches, stmt), nil
}

// JSONPath evaluates a standard JSONPath expression against decoded
// document data and returns every selected value.
func JSONPath(data any, expr string) ([]any, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrPath, expr, err)
	}

	selected := path.Select(record.Plain(data))
	results := make([]any, 0, len(selected))
	results = append(results, selected...)

	return results, nil
}

func project(matches []*tree.Node, stmt *selector.Statement) []any {
	results := make([]any, 0, len(matches))

	predicate := stmt.Predicate()
	for _, match := range matches {
		if predicate != nil {
			if match.Parent == nil || !predicate(match.Parent.Data) {
				continue
			}
		}

		switch {
		case stmt.IsZeroSelect():
			results = append(results, match.Data)
		case stmt.IsAllSelect():
			if match.Parent != nil {
				results = append(results, match.Parent.Data)
			}
		default:
			if projected, ok := projectColumns(match.Parent, stmt.Columns()); ok {
				results = append(results, projected)
			}
		}
	}

	return results
}

// projectColumns builds a record holding only the named columns of the
// match's parent, in statement order and the parent's shape. Parents
// missing any column project to nothing.
func projectColumns(parent *tree.Node, columns []string) (any, bool) {
	if parent == nil {
		return nil, false
	}

	if _, ordered := parent.Data.(yaml.MapSlice); ordered {
		projected := make(yaml.MapSlice, 0, len(columns))
		seen := make(map[string]bool, len(columns))
		for _, column := range columns {
			value, ok := record.Get(parent.Data, column)
			if !ok {
				return nil, false
			}
			if seen[column] {
				continue
			}
			seen[column] = true
			projected = append(projected, yaml.MapItem{Key: column, Value: value})
		}
		return projected, true
	}

	projected := make(map[string]any, len(columns))
	for _, column := range columns {
		value, ok := record.Get(parent.Data, column)
		if !ok {
			return nil, false
		}
		projected[column] = value
	}
	return projected, true
}

func sequenceLookup(items []any, index string) (any, error) {
	trimmed := strings.TrimSpace(index)
	if bareIntRe.MatchString(trimmed) {
		position, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrIndex, index, err)
		}
		return elementAt(items, position)
	}

	bounds, err := parseSlice(index)
	if err != nil {
		return nil, err
	}
	return sliceElements(items, bounds)
}

func elementAt(items []any, position int) (any, error) {
	resolved := position
	if resolved < 0 {
		resolved += len(items)
	}
	if resolved < 0 || resolved >= len(items) {
		return nil, fmt.Errorf("%w: position %d out of range for %d elements", ErrIndex, position, len(items))
	}
	return items[resolved], nil
}

// sliceBounds holds the components of a slice expression; nil means the
// component was left empty.
type sliceBounds struct {
	start *int
	stop  *int
	step  *int
}

func parseSlice(index string) (sliceBounds, error) {
	parts := strings.Split(index, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return sliceBounds{}, fmt.Errorf("%w: %q is not a position or slice expression", ErrIndex, index)
	}

	valid := false
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || bareIntRe.MatchString(part) {
			valid = true
			break
		}
	}
	if !valid {
		return sliceBounds{}, fmt.Errorf("%w: %q has no integer slice component", ErrIndex, index)
	}

	components := make([]*int, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return sliceBounds{}, fmt.Errorf("%w: slice component %q is not an integer", ErrIndex, part)
		}
		components[i] = &value
	}

	bounds := sliceBounds{start: components[0], stop: components[1]}
	if len(components) == 3 {
		bounds.step = components[2]
	}
	return bounds, nil
}

// sliceElements selects elements the way sequence slicing conventionally
// works: half-open, negative indices end-relative, out-of-range bounds
// clamped, negative step reversing.
func sliceElements(items []any, bounds sliceBounds) ([]any, error) {
	step := 1
	if bounds.step != nil {
		step = *bounds.step
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: slice step cannot be zero", ErrIndex)
	}

	length := len(items)
	start, stop := 0, length
	if step < 0 {
		start, stop = length-1, -1
	}
	if bounds.start != nil {
		start = clampIndex(*bounds.start, length, step)
	}
	if bounds.stop != nil {
		stop = clampIndex(*bounds.stop, length, step)
	}

	out := make([]any, 0)
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, items[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, items[i])
		}
	}
	return out, nil
}

func clampIndex(index, length, step int) int {
	if index < 0 {
		index += length
		if index < 0 {
			if step > 0 {
				return 0
			}
			return -1
		}
		return index
	}
	if index >= length {
		if step > 0 {
			return length
		}
		return length - 1
	}
	return index
}

func isSequence(data any) bool {
	switch data.(type) {
	case []any:
		return true
	case []byte:
		return false
	}

	reflected := reflect.ValueOf(data)
	return reflected.IsValid() && (reflected.Kind() == reflect.Slice || reflected.Kind() == reflect.Array)
}

func sequenceItems(data any) []any {
	if items, ok := data.([]any); ok {
		return items
	}

	reflected := reflect.ValueOf(data)
	items := make([]any, reflected.Len())
	for i := range items {
		items[i] = reflected.Index(i).Interface()
	}
	return items
}
