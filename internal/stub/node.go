package stub

import (
	"slices"

	"nanobind-stubgen/internal/common"
	"nanobind-stubgen/internal/signature"
)

// EnumBase is the base every Enum node declares.
const EnumBase = "enum.Enum"

// Node is one entry of the stub tree.
type Node struct {
	Kind Kind
	Name string
	// Doc is the documentation rendered under the header.
	Doc string
	// Children are kept in introspection order.
	Children []*Node

	// Bases lists the base types of a class.
	Bases []string
	// Suppress lists child kinds a class never exports.
	Suppress []Kind

	// Signature is the primary declaration of a routine.
	Signature signature.Signature
	// Overloads are the alternate declarations of a routine.
	Overloads []signature.Signature
	// Static marks a method that takes no instance.
	Static bool

	// Getter and Setter are the accessors of a property.
	Getter *signature.Signature
	Setter *signature.Signature

	// TypeLabel is the annotation of a constant.
	TypeLabel string
}

// NewModule creates a namespace node.
func NewModule(name, doc string) *Node {
	return &Node{Kind: KindModule, Name: name, Doc: doc}
}

// NewClass creates a class node with the given bases.
func NewClass(name, doc string, bases ...string) *Node {
	return &Node{Kind: KindClass, Name: name, Doc: doc, Bases: bases}
}

// NewEnum creates an enumeration node. Enums never export constructors.
func NewEnum(name, doc string) *Node {
	return &Node{
		Kind:     KindEnum,
		Name:     name,
		Doc:      doc,
		Bases:    []string{EnumBase},
		Suppress: []Kind{KindConstructor},
	}
}

// NewEnumValue creates an enumeration member.
func NewEnumValue(name string) *Node {
	return &Node{Kind: KindEnumValue, Name: name, TypeLabel: "Any"}
}

// NewRoutine creates a function, method or constructor node from resolved
// signatures; the first one is the primary declaration.
func NewRoutine(kind Kind, sigs []signature.Signature) *Node {
	n := &Node{Kind: kind}

	primary, ok := common.First(sigs)
	if !ok {
		return n
	}

	n.Name = primary.Name
	n.Doc = primary.Doc
	n.Signature = primary
	n.Overloads = common.Rest(sigs)

	return n
}

// NewProperty creates a property node. Either accessor may be nil.
func NewProperty(name, doc string, getter, setter *signature.Signature) *Node {
	return &Node{Kind: KindProperty, Name: name, Doc: doc, Getter: getter, Setter: setter}
}

// NewConstant creates a module or class level value.
func NewConstant(name, typeLabel string) *Node {
	return &Node{Kind: KindConstant, Name: name, TypeLabel: typeLabel}
}

// Add appends a child.
func (n *Node) Add(child *Node) {
	n.Children = append(n.Children, child)
}

// HasChildren reports whether the node owns any child.
func (n *Node) HasChildren() bool {
	return !common.IsEmpty(n.Children)
}

// Documentation returns the node's documentation text.
func (n *Node) Documentation() string {
	return n.Doc
}

// Suppresses reports whether children of kind k are left out of the export.
func (n *Node) Suppresses(k Kind) bool {
	return slices.Contains(n.Suppress, k)
}

// IsOverloaded reports whether a routine has more than one declaration.
func (n *Node) IsOverloaded() bool {
	return len(n.Overloads) > 0
}

// SubModules returns the module children in order.
func (n *Node) SubModules() []*Node {
	var out []*Node

	for _, c := range n.Children {
		if c.Kind == KindModule {
			out = append(out, c)
		}
	}

	return out
}

// HasSubModules reports whether any child is a module.
func (n *Node) HasSubModules() bool {
	return len(n.SubModules()) > 0
}

// Exported returns the children rendered inside this node, in order:
// suppressed kinds, sub-modules and properties without accessors are left out.
func (n *Node) Exported() []*Node {
	if !n.HasChildren() {
		return nil
	}

	var out []*Node

	for _, c := range n.Children {
		if n.Suppresses(c.Kind) || c.Kind == KindModule {
			continue
		}

		if c.Kind == KindProperty && c.Getter == nil && c.Setter == nil {
			continue
		}

		out = append(out, c)
	}

	return out
}

// Walk visits n and every descendant depth-first, in children order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)

	for _, c := range n.Children {
		c.Walk(fn)
	}
}
