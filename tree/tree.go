// Package tree is a lazy, non-visual tree model over an object graph. A host
// can walk the same conceptual tree the flattener walks eagerly, expanding
// one level at a time on demand, which suits interactive exploration of
// graphs too large or too cyclic to flatten whole.
package tree

import (
	"github.com/ehsanranjbar/objwalk"
)

// Node is one position in the lazy tree. Children are enumerated on first
// request and memoized.
type Node struct {
	name     string
	path     string
	depth    int
	value    any
	opts     options
	children []*Node
	expanded bool
}

type options struct {
	rootName  string
	maxDepth  int
	skipRules []objwalk.SkipRule
}

// Option customizes a tree.
type Option func(*options)

// WithRootName sets the path prefix of the root node.
func WithRootName(name string) Option {
	return func(o *options) { o.rootName = name }
}

// WithMaxDepth bounds expansion depth; nodes at the limit report no children.
func WithMaxDepth(d int) Option {
	return func(o *options) { o.maxDepth = d }
}

// WithSkipRules replaces the default recursion-skipping rules.
func WithSkipRules(rules ...objwalk.SkipRule) Option {
	return func(o *options) { o.skipRules = rules }
}

// New creates the root node of a lazy tree over v.
func New(v any, opts ...Option) *Node {
	o := options{
		rootName:  objwalk.DefaultRootName,
		maxDepth:  objwalk.DefaultMaxDepth,
		skipRules: objwalk.DefaultSkipRules(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Node{
		name:  o.rootName,
		path:  o.rootName,
		value: v,
		opts:  o,
	}
}

// Name returns the node's field name, key, or index.
func (n *Node) Name() string { return n.name }

// Path returns the node's full access path from the root.
func (n *Node) Path() string { return n.path }

// Depth returns the node's distance from the root.
func (n *Node) Depth() int { return n.depth }

// Value returns the value held at this position.
func (n *Node) Value() any { return n.value }

// Kind returns the traversal shape of the node's value.
func (n *Node) Kind() objwalk.Kind { return objwalk.Classify(n.value) }

// HasChildren reports whether Children would return anything, without
// forcing enumeration of nodes that were not expanded yet.
func (n *Node) HasChildren() bool {
	if n.expanded {
		return len(n.children) > 0
	}
	return n.depth < n.opts.maxDepth && n.Kind().Composite()
}

// Children enumerates the node's direct children, lazily on first call.
// Nodes beyond the depth limit and values that refuse introspection report
// no children.
func (n *Node) Children() []*Node {
	if n.expanded {
		return n.children
	}
	n.expanded = true

	if n.depth >= n.opts.maxDepth {
		return nil
	}

	kids, err := objwalk.Children(n.value)
	if err != nil {
		return nil
	}

	n.children = make([]*Node, 0, len(kids))
	for _, c := range kids {
		if n.skip(c) {
			continue
		}
		n.children = append(n.children, &Node{
			name:  c.Name,
			path:  c.Path(n.path),
			depth: n.depth + 1,
			value: c.Value,
			opts:  n.opts,
		})
	}
	return n.children
}

func (n *Node) skip(c objwalk.Child) bool {
	for _, rule := range n.opts.skipRules {
		if rule(c.Name, n.value, c.Value) {
			return true
		}
	}
	return false
}

// Walk visits the node and its descendants depth-first in pre-order,
// expanding lazily as it goes. Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) {
	var rec func(*Node) bool
	rec = func(cur *Node) bool {
		if !fn(cur) {
			return false
		}
		for _, c := range cur.Children() {
			if !rec(c) {
				return false
			}
		}
		return true
	}
	rec(n)
}
