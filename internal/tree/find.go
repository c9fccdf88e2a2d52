package tree

import "github.com/jacoelho/dq/internal/lookup"

// Find walks the tree in pre-order and returns every node whose
// position satisfies the lookup, at any depth, in encounter order.
//
// Sequence members carry no matchable labels of their own: they are
// only recursed into, and matching resumes on the map keys nested
// inside them.
func Find(root *Node, lk *lookup.Lookup) []*Node {
	var found []*Node
	findIn(root, lk, &found)
	return found
}

func findIn(node *Node, lk *lookup.Lookup, found *[]*Node) {
	for _, child := range node.Children {
		if node.Kind == KindSequence {
			if child.HasChildren() {
				findIn(child, lk, found)
			}
			continue
		}

		if lk.MatchesIndex(child.Index) && (!lk.HasValueExpr() || lk.MatchesValue(child.Data)) {
			*found = append(*found, child)
		}
		if child.HasChildren() {
			findIn(child, lk, found)
		}
	}
}
