package mapper

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"nanobind-stubgen/internal/common"
	"nanobind-stubgen/internal/diagnostic"
	"nanobind-stubgen/internal/introspect"
	"nanobind-stubgen/internal/pysyntax"
	"nanobind-stubgen/internal/signature"
	"nanobind-stubgen/internal/stub"
)

// ConstructorName is the initializer that is exported despite its
// underscore prefix.
const ConstructorName = "__init__"

// ErrNotNamespace is returned when the root object is not a module.
var ErrNotNamespace = errors.New("not a namespace")

// Mapper builds stub trees from introspected namespaces.
type Mapper struct {
	recoverer *signature.Recoverer
	diags     *diagnostic.Diagnostics
}

// New creates a Mapper. Recoverer and mapper should share diags.
func New(recoverer *signature.Recoverer, diags *diagnostic.Diagnostics) *Mapper {
	return &Mapper{recoverer: recoverer, diags: diags}
}

// MapNamespace maps ns, and everything below it, into a module node named name.
func (m *Mapper) MapNamespace(name string, ns introspect.Object) (*stub.Node, error) {
	if ns == nil || !ns.IsModule() {
		return nil, fmt.Errorf("mapping %s: %w", name, ErrNotNamespace)
	}

	root := stub.NewModule(name, docOf(ns))
	m.mapMembers(root, name, ns)

	return root, nil
}

func (m *Mapper) mapMembers(parent *stub.Node, path string, ns introspect.Object) {
	for _, member := range ns.Members() {
		if isPrivate(member.Name) {
			continue
		}

		if child := m.mapMember(parent, path, member); child != nil {
			parent.Add(child)
		}
	}
}

func (m *Mapper) mapMember(parent *stub.Node, path string, member introspect.Member) *stub.Node {
	memberPath := common.QualifiedName(path, member.Name)
	obj := member.Object

	if obj == nil || member.Name == "" {
		m.diags.AddWarning(diagnostic.CodeUnclassifiedMember,
			"member could not be classified and was dropped", memberPath, "")

		return nil
	}

	if pysyntax.IsKeyword(member.Name) {
		m.diags.AddWarning(diagnostic.CodeKeywordName,
			"member is named like a Python keyword and cannot be declared", memberPath, "")

		return nil
	}

	inClass := parent.Kind.IsClassLike()

	switch {
	case obj.IsClass():
		return m.mapClass(member.Name, memberPath, obj)
	case obj.IsModule() && !inClass:
		mod := stub.NewModule(member.Name, docOf(obj))
		m.mapMembers(mod, memberPath, obj)

		return mod
	case obj.IsRoutine():
		return m.mapRoutine(member.Name, memberPath, obj, inClass)
	case obj.IsProperty():
		return m.mapProperty(member.Name, memberPath, obj)
	case parent.Kind == stub.KindEnum && obj.TypeName() == parent.Name:
		return stub.NewEnumValue(member.Name)
	default:
		return stub.NewConstant(member.Name, TypeLabel(obj.TypeName()))
	}
}

func (m *Mapper) mapClass(name, path string, obj introspect.Object) *stub.Node {
	var node *stub.Node

	if obj.Marker() == introspect.MarkerNativeEnum {
		node = stub.NewEnum(name, docOf(obj))
	} else {
		bases := slices.DeleteFunc(obj.Bases(), func(b string) bool {
			return b == "object" || !identPattern.MatchString(b)
		})
		node = stub.NewClass(name, docOf(obj), bases...)
	}

	m.mapMembers(node, path, obj)

	return node
}

func (m *Mapper) mapRoutine(name, path string, obj introspect.Object, inClass bool) *stub.Node {
	kind := stub.KindFunction
	if inClass {
		kind = stub.KindMethod
	}

	// Constructor docs of native types and enums are often generic.
	quiet := false
	if name == ConstructorName && inClass {
		kind = stub.KindConstructor
		quiet = true
	}

	doc, _ := obj.Doc()

	var sigs []signature.Signature
	if obj.Marker().IsNativeRoutine() {
		sigs = m.recoverer.Resolve(path, name, doc, quiet)
	} else {
		m.diags.AddInfo(diagnostic.CodePlainRoutine,
			"routine is not a native binding and gets a generic signature", path, "")

		sigs = []signature.Signature{{
			Name: name,
			Text: signature.FallbackText(name),
			Doc:  strings.TrimSpace(doc),
		}}
	}

	node := stub.NewRoutine(kind, sigs)
	node.Static = kind == stub.KindMethod && obj.Marker() == introspect.MarkerNativeFunc

	return node
}

func (m *Mapper) mapProperty(name, path string, obj introspect.Object) *stub.Node {
	getterObj, setterObj := obj.Accessors()

	getter := m.accessor(path, name, getterObj)
	setter := m.accessor(path, name, setterObj)

	// A property without its own doc reports the getter's.
	doc, _ := obj.Doc()
	if getterObj != nil {
		if getterDoc, _ := getterObj.Doc(); getterDoc == doc {
			doc = ""
		}
	}

	return stub.NewProperty(name, strings.TrimSpace(doc), getter, setter)
}

func (m *Mapper) accessor(path, name string, obj introspect.Object) *signature.Signature {
	if obj == nil {
		return nil
	}

	doc, _ := obj.Doc()

	var sig signature.Signature
	if obj.Marker().IsNativeRoutine() {
		sig = m.recoverer.Recover(path, name, doc, false)
	} else {
		sig = signature.Fallback(name)
		sig.Doc = strings.TrimSpace(doc)
	}

	return &sig
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// builtinLabels maps runtime type names that are not usable annotations.
var builtinLabels = map[string]string{
	"NoneType": "None",
	"module":   "Any",
}

// TypeLabel derives a constant annotation from a runtime type name.
func TypeLabel(typeName string) string {
	if label, ok := builtinLabels[typeName]; ok {
		return label
	}

	if !identPattern.MatchString(typeName) {
		return "Any"
	}

	return typeName
}

func isPrivate(name string) bool {
	return strings.HasPrefix(name, "_") && name != ConstructorName
}

func docOf(obj introspect.Object) string {
	doc, _ := obj.Doc()

	return strings.TrimSpace(doc)
}
