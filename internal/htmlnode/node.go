// Package htmlnode models a minimal HTML tree and serializes it to a string.
//
// A tree is made of two node variants: Leaf carries text, Parent carries
// children. Both are immutable once handed to Render.
package htmlnode

import "errors"

// Sentinel errors for tree serialization.
var (
	ErrEmptyLeafValue = errors.New("leaf node with a tag requires a value")
	ErrEmptyTag       = errors.New("parent node requires a tag")
)

// voidElements render without text and without a closing tag.
var voidElements = map[string]bool{
	"img": true,
	"br":  true,
	"hr":  true,
}

// Node is either a *Leaf or a *Parent.
type Node interface {
	isNode()
}

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list. Order is preserved on output.
type Attrs []Attr

// Leaf is a node without children. An empty Tag emits Text verbatim.
type Leaf struct {
	Tag   string
	Text  string
	Attrs Attrs
}

// Parent is a node whose content is the concatenation of its children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attrs
}

func (*Leaf) isNode()   {}
func (*Parent) isNode() {}

// Compile-time interface checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// NewText returns an untagged leaf.
func NewText(text string) *Leaf {
	return &Leaf{Text: text}
}

// NewLeaf returns a tagged leaf.
func NewLeaf(tag, text string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Text: text, Attrs: attrs}
}

// NewParent returns a parent node owning children.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

// IsVoid reports whether tag is rendered as a void element.
func IsVoid(tag string) bool {
	return voidElements[tag]
}
