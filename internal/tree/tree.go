// Package tree wraps nested data in a navigable node graph with parent
// links and shape classification.
package tree

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/jacoelho/dq/internal/record"
)

// Kind classifies the shape of a node's data.
type Kind uint8

const (
	KindScalar Kind = iota
	KindMap
	KindSequence
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "opaque"
	}
}

// Node wraps one position of the original nested structure.
//
// Index is the label by which the node was reached from its parent: the
// map key, or a synthetic "__index__N" for sequence members; empty for
// the root. Children is nil for leaves and empty containers, never an
// empty slice. Parent is a non-owning back-reference used for upward
// lookups only.
type Node struct {
	Data     any
	Index    string
	Kind     Kind
	Children []*Node
	Parent   *Node
}

// Build wraps nested data into a node tree. Nodes reference the
// original data, they do not copy values.
func Build(data any) *Node {
	return build(data, "", nil)
}

func build(data any, index string, parent *Node) *Node {
	node := &Node{Data: data, Index: index, Parent: parent}

	switch {
	case record.IsMap(data):
		node.Kind = KindMap
		entries, _ := record.Entries(data)
		if len(entries) == 0 {
			return node
		}
		node.Children = make([]*Node, 0, len(entries))
		for _, entry := range entries {
			node.Children = append(node.Children, build(entry.Value, entry.Key, node))
		}
	case isSequence(data):
		node.Kind = KindSequence
		items := sequenceItems(data)
		if len(items) == 0 {
			return node
		}
		node.Children = make([]*Node, 0, len(items))
		for i, item := range items {
			node.Children = append(node.Children, build(item, fmt.Sprintf("__index__%d", i), node))
		}
	case isScalar(data):
		node.Kind = KindScalar
	default:
		node.Kind = KindOpaque
	}

	return node
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return !n.HasChildren()
}

// IsMap reports whether the node wraps a map-shaped value.
func (n *Node) IsMap() bool {
	return n.Kind == KindMap
}

// IsSequence reports whether the node wraps a sequence value.
func (n *Node) IsSequence() bool {
	return n.Kind == KindSequence
}

func isScalar(data any) bool {
	switch data.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

func isSequence(data any) bool {
	switch data.(type) {
	case []any:
		return true
	case []byte:
		// raw bytes are a scalar-like blob, not a position sequence
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
