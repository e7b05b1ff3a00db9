package stub

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"nanobind-stubgen/internal/pysyntax"
	"nanobind-stubgen/internal/signature"
)

func sig(name, text, doc string) signature.Signature {
	return signature.Signature{Name: name, Text: text, Doc: doc}
}

func TestExport_EmptyClassHasPlaceholder(t *testing.T) {
	c := NewClass("Foo", "")

	assert.Equal(t, "class Foo:\n    ...\n\n", c.String())
}

func TestExport_ClassWithChildrenHasNoPlaceholder(t *testing.T) {
	c := NewClass("Foo", "A foo.")
	c.Add(NewRoutine(KindMethod, []signature.Signature{sig("bar", "bar(self) -> int", "Returns.")}))

	expected := "class Foo:\n" +
		"    \"\"\"\n" +
		"    A foo.\n" +
		"    \"\"\"\n" +
		"\n" +
		"    def bar(self) -> int:\n" +
		"        \"\"\"\n" +
		"        Returns.\n" +
		"        \"\"\"\n" +
		"        ...\n" +
		"\n"

	assert.Equal(t, expected, c.String())
}

func TestExport_ClassBases(t *testing.T) {
	c := NewClass("Derived", "", "Base", "Mixin")

	assert.Equal(t, "class Derived(Base, Mixin):\n    ...\n\n", c.String())
}

func TestExport_EnumSuppressesConstructor(t *testing.T) {
	e := NewEnum("Color", "")
	e.Add(NewRoutine(KindConstructor, []signature.Signature{sig("__init__", "__init__(self, value: int) -> None", "")}))
	e.Add(NewEnumValue("RED"))
	e.Add(NewEnumValue("GREEN"))

	out := e.String()

	assert.Equal(t, "class Color(enum.Enum):\n\n    RED: Any\n\n    GREEN: Any\n\n", out)
	assert.NotContains(t, out, "__init__")
	assert.True(t, e.HasChildren())
}

func TestExport_EnumWithOnlyConstructorHasPlaceholder(t *testing.T) {
	e := NewEnum("Empty", "")
	e.Add(NewRoutine(KindConstructor, []signature.Signature{signature.Fallback("__init__")}))

	assert.Equal(t, "class Empty(enum.Enum):\n    ...\n\n", e.String())
}

func TestExport_OverloadedRoutine(t *testing.T) {
	f := NewRoutine(KindFunction, []signature.Signature{
		sig("foo", "foo(a)", ""),
		sig("foo", "foo(a, b)", "Two."),
	})

	expected := "@overload\ndef foo(a):\n    ...\n\n" +
		"@overload\ndef foo(a, b):\n    \"\"\"\n    Two.\n    \"\"\"\n    ...\n\n"

	assert.Equal(t, expected, f.String())
	assert.True(t, f.IsOverloaded())
	assert.Equal(t, "foo", f.Name)
}

func TestExport_StaticMethod(t *testing.T) {
	f := NewRoutine(KindMethod, []signature.Signature{sig("make", "make() -> Foo", "")})
	f.Static = true

	assert.Equal(t, "@staticmethod\ndef make() -> Foo:\n    ...\n\n", f.String())
}

func TestExport_Property(t *testing.T) {
	getter := sig("value", "value(self) -> int", "Getter doc.")
	setter := sig("value", "value(self, arg: int, /) -> None", "")

	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name: "getter and setter",
			node: NewProperty("value", "The value.", &getter, &setter),
			expected: "@property\ndef value(self) -> int:\n    \"\"\"\n    The value.\n    \"\"\"\n    ...\n\n" +
				"@value.setter\ndef value(self, arg: int, /) -> None:\n    ...\n\n",
		},
		{
			name:     "getter doc used when property has none",
			node:     NewProperty("value", "", &getter, nil),
			expected: "@property\ndef value(self) -> int:\n    \"\"\"\n    Getter doc.\n    \"\"\"\n    ...\n\n",
		},
		{
			name:     "no accessors",
			node:     NewProperty("value", "", nil, nil),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.String())
		})
	}
}

func TestExport_PropertyWithoutAccessorsIsNotExported(t *testing.T) {
	c := NewClass("Foo", "")
	c.Add(NewProperty("value", "", nil, nil))

	assert.Equal(t, "class Foo:\n    ...\n\n", c.String())
}

func TestExport_Constant(t *testing.T) {
	assert.Equal(t, "VERSION: str\n\n", NewConstant("VERSION", "str").String())
	assert.Equal(t, "X: Any\n\n", NewConstant("X", "").String())
}

func TestExport_DocumentationLines(t *testing.T) {
	f := NewRoutine(KindFunction, []signature.Signature{
		sig("f", "f()", "First line.\n\n  Indented \"\"\"quoted\"\"\" C:\\path   "),
	})

	expected := "def f():\n" +
		"    \"\"\"\n" +
		"    First line.\n" +
		"\n" +
		"      Indented \\\"\\\"\\\"quoted\\\"\\\"\\\" C:\\\\path\n" +
		"    \"\"\"\n" +
		"    ...\n\n"

	assert.Equal(t, expected, f.String())
}

func TestExport_ModuleSkipsSubModules(t *testing.T) {
	m := NewModule("pkg", "")
	m.Add(NewModule("sub", ""))
	m.Add(NewConstant("X", "int"))

	assert.Equal(t, "X: int\n\n", m.String())
	assert.True(t, m.HasSubModules())
	assert.Len(t, m.SubModules(), 1)
}

func TestExport_OrderFollowsChildren(t *testing.T) {
	m := NewModule("pkg", "")
	for _, name := range []string{"zeta", "alpha", "mid"} {
		m.Add(NewConstant(name, "int"))
	}

	assert.Equal(t, "zeta: int\n\nalpha: int\n\nmid: int\n\n", m.String())
}

func TestExport_NestedIndentation(t *testing.T) {
	outer := NewClass("Outer", "")
	inner := NewClass("Inner", "")
	inner.Add(NewConstant("X", "int"))
	outer.Add(inner)

	expected := "class Outer:\n\n" +
		"    class Inner:\n\n" +
		"        X: int\n\n"

	assert.Equal(t, expected, outer.String())
}

func TestExport_ParsesAsPython(t *testing.T) {
	getter := sig("value", "value(self) -> int", "")

	c := NewClass("Foo", "Doc with \"\"\" quotes.")
	c.Add(NewRoutine(KindConstructor, []signature.Signature{signature.Fallback("__init__")}))
	c.Add(NewRoutine(KindMethod, []signature.Signature{
		sig("bar", "bar(self, x: int) -> int", ""),
		sig("bar", "bar(self, x: float) -> float", ""),
	}))
	c.Add(NewProperty("value", "", &getter, nil))
	c.Add(NewConstant("LIMIT", "int"))

	e := NewEnum("Color", "")
	e.Add(NewEnumValue("RED"))

	m := NewModule("mod", "")
	m.Add(c)
	m.Add(e)
	m.Add(NewClass("Empty", ""))

	assert.True(t, pysyntax.IsValidModule(m.String()), m.String())
}

func TestExport_ParameterOrderDecidesParse(t *testing.T) {
	tests := []struct {
		text  string
		valid bool
	}{
		{"f(self, a, b=1, *args, c, **kw) -> None", true},
		{"f(self, a=1, /, b=2, *, c) -> None", true},
		{"f(self, x: int = 1, y: int) -> None", false},
		{"f(self, **kwargs, x: int) -> None", false},
		{"f(self, *, ) -> None", false},
		{"f(self, *args, /) -> None", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c := NewClass("C", "")
			c.Add(NewRoutine(KindMethod, []signature.Signature{sig("f", tt.text, "")}))

			m := NewModule("mod", "")
			m.Add(c)

			assert.Equal(t, tt.valid, pysyntax.IsValidModule(m.String()), m.String())
		})
	}
}

func TestExportDoc(t *testing.T) {
	var sb strings.Builder

	NewModule("m", "Bindings.\n  Indented.").ExportDoc(&sb)
	assert.Equal(t, "\"\"\"\nBindings.\n  Indented.\n\"\"\"\n\n", sb.String())

	sb.Reset()
	NewModule("m", "").ExportDoc(&sb)
	assert.Empty(t, sb.String())
}

func TestWalk(t *testing.T) {
	m := NewModule("pkg", "")
	c := NewClass("A", "")
	c.Add(NewConstant("X", "int"))
	m.Add(c)
	m.Add(NewConstant("Y", "int"))

	var names []string
	m.Walk(func(n *Node) { names = append(names, n.Name) })

	assert.Equal(t, []string{"pkg", "A", "X", "Y"}, names)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "EnumValue", KindEnumValue.String())
	assert.Equal(t, "Constant", KindConstant.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.True(t, KindConstructor.IsRoutine())
	assert.False(t, KindProperty.IsRoutine())
	assert.True(t, KindEnum.IsClassLike())
}
