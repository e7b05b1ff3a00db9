package signature

import "strings"

// Signature is one declaration of a callable.
type Signature struct {
	// Name is the callable name the declaration was recovered for.
	Name string
	// Text is the declaration without the "def " keyword and trailing colon,
	// e.g. "add(a: int, b: int) -> int".
	Text string
	// Doc is the free text that followed the declaration.
	Doc string
}

// Fallback returns the generic variadic signature for name.
func Fallback(name string) Signature {
	return Signature{Name: name, Text: FallbackText(name)}
}

// FallbackText returns "name(*args, **kwargs)".
func FallbackText(name string) string {
	return name + "(*args, **kwargs)"
}

// IsFallback reports whether s is the generic variadic signature.
func (s Signature) IsFallback() bool {
	return s.Text == FallbackText(s.Name)
}

// CallableName returns the token preceding the first "(", trimmed.
// Without a "(" the whole trimmed text is returned.
func CallableName(text string) string {
	if i := strings.IndexByte(text, '('); i >= 0 {
		text = text[:i]
	}

	return strings.TrimSpace(text)
}

// splitLines splits documentation into lines, dropping carriage returns.
func splitLines(doc string) []string {
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}

	return lines
}

// joinNonBlank joins the lines that contain more than whitespace.
func joinNonBlank(lines []string) string {
	var kept []string

	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}

	return strings.Join(kept, "\n")
}

// joinTrimmed joins lines verbatim after dropping leading and trailing
// blank lines.
func joinTrimmed(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}
