package inklayouts

import (
	"fmt"
	"sort"

	"github.com/inkwellhq/inkwell/inkgraph"
	"github.com/inkwellhq/inkwell/lib/geo"
)

// Node wraps one object for the duration of a single layout call. Children
// are the targets of the object's outgoing edges in comparator order.
type Node struct {
	Obj      *inkgraph.Object
	Children []*Node

	leaves int
	angle  float64
}

// NewNode builds a synthetic node over an existing object with a hand-picked
// child set, used by the balanced layout to split one root into two.
func NewNode(obj *inkgraph.Object, children []*Node) *Node {
	return &Node{Obj: obj, Children: children}
}

// LeafCount is the number of descendant leaves, memoized. A leaf counts
// itself.
func (n *Node) LeafCount() int {
	if n.leaves == 0 {
		if len(n.Children) == 0 {
			n.leaves = 1
		} else {
			for _, c := range n.Children {
				n.leaves += c.LeafCount()
			}
		}
	}
	return n.leaves
}

// BuildTree walks outgoing edges from root and returns the wrapped hierarchy.
// Reaching any object twice means connectivity is not a forest from this
// root, which is an error rather than unbounded recursion.
func BuildTree(g *inkgraph.Graph, root *inkgraph.Object, cfg LayoutConfig) (*Node, error) {
	visited := make(map[*inkgraph.Object]struct{})
	return buildTree(g, root, root, cfg, visited, 0)
}

func buildTree(g *inkgraph.Graph, root, obj *inkgraph.Object, cfg LayoutConfig, visited map[*inkgraph.Object]struct{}, depth int) (*Node, error) {
	if _, ok := visited[obj]; ok {
		return nil, fmt.Errorf("inklayouts: connectivity is not a tree from %q: %q is reachable twice", root.ID, obj.ID)
	}
	visited[obj] = struct{}{}
	obj.Level = depth

	n := &Node{Obj: obj}

	var siblings []*inkgraph.Object
	for _, e := range g.Outgoing(obj) {
		siblings = append(siblings, e.Dst)
	}
	SortSiblings(siblings, cfg)

	for _, s := range siblings {
		child, err := buildTree(g, root, s, cfg, visited, depth+1)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// SortSiblings orders siblings the same way for every topology, so switching
// layouts never reshuffles branches: explicit order first, then spatial
// position along the configured axis.
func SortSiblings(objs []*inkgraph.Object, cfg LayoutConfig) {
	sort.SliceStable(objs, func(i, j int) bool {
		return siblingLess(objs[i], objs[j], cfg.SortOrder)
	})
}

func siblingLess(a, b *inkgraph.Object, order SortOrder) bool {
	if a.Order != nil && b.Order != nil {
		return *a.Order < *b.Order
	}
	if a.Order != nil {
		return true
	}
	if b.Order != nil {
		return false
	}
	if order == SortLeftToRight {
		if c := geo.PrecisionCompare(a.TopLeft.X, b.TopLeft.X, POSITION_EPSILON); c != 0 {
			return c < 0
		}
		return geo.PrecisionCompare(a.TopLeft.Y, b.TopLeft.Y, POSITION_EPSILON) < 0
	}
	if c := geo.PrecisionCompare(a.TopLeft.Y, b.TopLeft.Y, POSITION_EPSILON); c != 0 {
		return c < 0
	}
	return geo.PrecisionCompare(a.TopLeft.X, b.TopLeft.X, POSITION_EPSILON) < 0
}
