// Package ast holds the expression tree shared by the parser, the semantic
// validator and the compiler.
package ast

import (
	"sort"
)

type Kind int

const (
	Prop Kind = iota
	And
	Or
	Not
	Implies
	Product
)

func (k Kind) String() string {
	switch k {
	case Prop:
		return "PROP"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Not:
		return "NOT"
	case Implies:
		return "IMPLIQUE"
	case Product:
		return "PRODUIT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether k is one of the six node kinds.
func (k Kind) Valid() bool {
	return k >= Prop && k <= Product
}

// Binary reports whether nodes of kind k take two operands.
func (k Kind) Binary() bool {
	return k == And || k == Or || k == Implies || k == Product
}

// Node is a tagged tree node. A node exclusively owns its children: trees
// built by this package never share a node between two parents.
//
// Prop nodes carry Name and no children. Not keeps its operand in Left.
// Binary nodes use Left and Right.
type Node struct {
	Kind  Kind
	Name  string
	Left  *Node
	Right *Node
}

func NewProp(name string) *Node {
	return &Node{Kind: Prop, Name: name}
}

func NewNot(operand *Node) *Node {
	return &Node{Kind: Not, Left: operand}
}

func NewAnd(left, right *Node) *Node {
	return NewBinary(And, left, right)
}

func NewOr(left, right *Node) *Node {
	return NewBinary(Or, left, right)
}

func NewImplies(left, right *Node) *Node {
	return NewBinary(Implies, left, right)
}

func NewProduct(left, right *Node) *Node {
	return NewBinary(Product, left, right)
}

func NewBinary(kind Kind, left, right *Node) *Node {
	return &Node{Kind: kind, Left: left, Right: right}
}

// Operand returns the operand of a Not node.
func (n *Node) Operand() *Node {
	return n.Left
}

// Children returns the present children in left to right order.
func (n *Node) Children() []*Node {
	var out []*Node
	if n.Left != nil {
		out = append(out, n.Left)
	}
	if n.Right != nil {
		out = append(out, n.Right)
	}
	return out
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Name != b.Name {
		return false
	}
	return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Atoms returns the distinct proposition names used in n, sorted.
func Atoms(n *Node) []string {
	seen := make(map[string]bool)
	var names []string
	Walk(n, func(node *Node) {
		if node.Kind == Prop && !seen[node.Name] {
			seen[node.Name] = true
			names = append(names, node.Name)
		}
	})
	sort.Strings(names)
	return names
}

// Size returns the number of nodes in n.
func Size(n *Node) int {
	count := 0
	Walk(n, func(*Node) { count++ })
	return count
}

// Depth returns the height of n; a single leaf has depth 1.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Depth(n.Left), Depth(n.Right))
}

// Walk visits n and its descendants in prefix order.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	Walk(n.Left, fn)
	Walk(n.Right, fn)
}
