package stub

import (
	"strings"

	"nanobind-stubgen/internal/signature"
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 4

// Export renders the node and its exported children at the given depth.
// Every rendered block is terminated by one blank line. Module nodes render
// only their non-module children; sub-modules are separate artifacts.
func (n *Node) Export(sb *strings.Builder, depth int) {
	switch {
	case n.Kind == KindModule:
		for _, c := range n.Exported() {
			c.Export(sb, depth)
		}
	case n.Kind.IsClassLike():
		n.exportClass(sb, depth)
	case n.Kind.IsRoutine():
		n.exportRoutine(sb, depth)
	case n.Kind == KindProperty:
		n.exportProperty(sb, depth)
	case n.Kind == KindConstant, n.Kind == KindEnumValue:
		label := n.TypeLabel
		if label == "" {
			label = "Any"
		}

		writeBlock(sb, depth, []string{n.Name + ": " + label})
	}
}

// String renders the node at depth zero.
func (n *Node) String() string {
	var sb strings.Builder
	n.Export(&sb, 0)

	return sb.String()
}

// ExportDoc renders the node's documentation as a docstring at depth zero.
// Nothing is written when the node has no documentation.
func (n *Node) ExportDoc(sb *strings.Builder) {
	lines := docLines(n.Documentation())
	if lines == nil {
		return
	}

	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, indentUnit)
	}

	writeBlock(sb, 0, lines)
}

func (n *Node) exportClass(sb *strings.Builder, depth int) {
	header := "class " + n.Name
	if len(n.Bases) > 0 {
		header += "(" + strings.Join(n.Bases, ", ") + ")"
	}

	lines := []string{header + ":"}
	lines = append(lines, docLines(n.Documentation())...)

	children := n.Exported()
	if len(children) == 0 {
		lines = append(lines, indentUnit+"...")
	}

	writeBlock(sb, depth, lines)

	for _, c := range children {
		c.Export(sb, depth+1)
	}
}

func (n *Node) exportRoutine(sb *strings.Builder, depth int) {
	sigs := append([]signature.Signature{n.Signature}, n.Overloads...)

	for _, sig := range sigs {
		var lines []string
		if n.IsOverloaded() {
			lines = append(lines, "@overload")
		}

		if n.Static {
			lines = append(lines, "@staticmethod")
		}

		lines = append(lines, "def "+sig.Text+":")
		lines = append(lines, docLines(sig.Doc)...)
		lines = append(lines, indentUnit+"...")

		writeBlock(sb, depth, lines)
	}
}

func (n *Node) exportProperty(sb *strings.Builder, depth int) {
	if n.Getter != nil {
		doc := n.Documentation()
		if doc == "" {
			doc = n.Getter.Doc
		}

		lines := []string{"@property", "def " + n.Getter.Text + ":"}
		lines = append(lines, docLines(doc)...)
		lines = append(lines, indentUnit+"...")

		writeBlock(sb, depth, lines)
	}

	if n.Setter != nil {
		writeBlock(sb, depth, []string{
			"@" + n.Name + ".setter",
			"def " + n.Setter.Text + ":",
			indentUnit + "...",
		})
	}
}

var indentUnit = strings.Repeat(" ", IndentWidth)

var docEscaper = strings.NewReplacer(`\`, `\\`, `"""`, `\"\"\"`)

// docLines renders doc as a triple-quoted block one level below the header,
// one output line per documentation line.
func docLines(doc string) []string {
	if strings.TrimSpace(doc) == "" {
		return nil
	}

	lines := []string{indentUnit + `"""`}

	for _, l := range strings.Split(doc, "\n") {
		l = strings.TrimRight(l, " \t\r")
		if l == "" {
			lines = append(lines, "")

			continue
		}

		lines = append(lines, indentUnit+docEscaper.Replace(l))
	}

	return append(lines, indentUnit+`"""`)
}

// writeBlock writes lines indented to depth followed by one blank line.
// Empty lines are written without indentation.
func writeBlock(sb *strings.Builder, depth int, lines []string) {
	prefix := strings.Repeat(indentUnit, depth)

	for _, l := range lines {
		if l != "" {
			sb.WriteString(prefix)
			sb.WriteString(l)
		}

		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
}
