package typetoken

import "regexp"

// NDArray is the neutral token every native array or tensor type becomes.
const NDArray = "numpy.typing.NDArray"

// Rule is a single pattern-to-replacement substitution.
type Rule struct {
	// Name identifies the rule in diagnostics and tests.
	Name string
	// Pattern matches the foreign spelling.
	Pattern *regexp.Regexp
	// Replacement is the regexp.Expand template written in place of a match.
	Replacement string
}

// rules run in this order: the tuple rules assume array payloads, which may
// contain commas, were already collapsed.
var rules = []Rule{
	{
		Name:        "ndarray",
		Pattern:     regexp.MustCompile(`(?:\bnumpy\.)?\bndarray\[[^\]]+\]`),
		Replacement: NDArray,
	},
	{
		Name:        "object-repr",
		Pattern:     regexp.MustCompile(`<[A-Za-z_][\w.]* object at 0x[0-9a-fA-F]+>`),
		Replacement: "...",
	},
	{
		Name:        "pair",
		Pattern:     regexp.MustCompile(`\bstd::(?:__\w+::)?pair<\s*([^<>,]+?)\s*,\s*([^<>,]+?)\s*>`),
		Replacement: "Tuple[${1}, ${2}]",
	},
	{
		Name:        "tuple",
		Pattern:     regexp.MustCompile(`\bstd::(?:__\w+::)?tuple<([^<>]*)>`),
		Replacement: "Tuple[${1}]",
	},
	{
		Name:        "tensor",
		Pattern:     regexp.MustCompile(`\btensor\[[^\]]+\]`),
		Replacement: NDArray,
	},
}

// Rewrite applies every rule, in order, to text.
func Rewrite(text string) string {
	for _, r := range rules {
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
	}

	return text
}
