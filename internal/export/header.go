package export

import (
	"regexp"
	"strings"

	"nanobind-stubgen/internal/stub"
	"nanobind-stubgen/internal/typetoken"
)

var typingNames = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"Any", regexp.MustCompile(`\bAny\b`)},
	{"Tuple", regexp.MustCompile(`\bTuple\[`)},
	{"overload", regexp.MustCompile(`(?m)^\s*@overload$`)},
}

// importHeader returns the import lines body needs, plus a re-export of subs.
func importHeader(body string, subs []*stub.Node) []string {
	var lines []string

	if strings.Contains(body, stub.EnumBase) {
		lines = append(lines, "import enum")
	}

	if strings.Contains(body, typetoken.NDArray) {
		lines = append(lines, "import numpy.typing")
	}

	var names []string

	for _, tn := range typingNames {
		if tn.pattern.MatchString(body) {
			names = append(names, tn.name)
		}
	}

	if len(names) > 0 {
		lines = append(lines, "from typing import "+strings.Join(names, ", "))
	}

	if len(subs) > 0 {
		subNames := make([]string, 0, len(subs))
		for _, s := range subs {
			subNames = append(subNames, s.Name)
		}

		lines = append(lines, "from . import "+strings.Join(subNames, ", "))
	}

	return lines
}

// Render returns the full text of the artifact for mod: docstring, import
// header and body. Sub-modules are not included.
func Render(mod *stub.Node) string {
	var body strings.Builder
	mod.Export(&body, 0)

	var sb strings.Builder
	mod.ExportDoc(&sb)

	if header := importHeader(body.String(), mod.SubModules()); len(header) > 0 {
		sb.WriteString(strings.Join(header, "\n"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(body.String())

	return sb.String()
}
