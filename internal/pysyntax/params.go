package pysyntax

import sitter "github.com/smacker/go-tree-sitter"

type paramKind int

const (
	paramPlain paramKind = iota
	paramDefault
	paramStar
	paramBareStar
	paramDoubleStar
	paramSlash
	paramSkip
)

func kindOf(p *sitter.Node) paramKind {
	switch p.Type() {
	case "default_parameter", "typed_default_parameter":
		return paramDefault
	case "list_splat_pattern":
		return paramStar
	case "dictionary_splat_pattern":
		return paramDoubleStar
	case "keyword_separator":
		return paramBareStar
	case "positional_separator":
		return paramSlash
	case "typed_parameter":
		// "*args: T" and "**kw: T" wrap the splat pattern.
		if p.NamedChildCount() > 0 {
			switch k := kindOf(p.NamedChild(0)); k {
			case paramStar, paramDoubleStar:
				return k
			}
		}

		return paramPlain
	case "comment":
		return paramSkip
	default:
		return paramPlain
	}
}

// validParameters applies the ordering rules of CPython's parser that the
// tree-sitter grammar does not enforce:
//   - a parameter without default may not follow one with a default,
//     unless it is keyword-only
//   - nothing may follow **kwargs
//   - a bare * must be followed by a named parameter
//   - * and / appear at most once
//   - / needs a parameter before it and may not follow *
func validParameters(params *sitter.Node) bool {
	seen := 0

	var seenDefault, seenStar, seenSlash, seenDoubleStar bool

	// Set by a bare * until a named parameter follows it.
	pendingBareStar := false

	for i := 0; i < int(params.NamedChildCount()); i++ {
		kind := kindOf(params.NamedChild(i))
		if kind == paramSkip {
			continue
		}

		if seenDoubleStar {
			return false
		}

		switch kind {
		case paramPlain:
			if seenDefault && !seenStar {
				return false
			}

			pendingBareStar = false
		case paramDefault:
			seenDefault = true
			pendingBareStar = false
		case paramStar, paramBareStar:
			if seenStar {
				return false
			}

			seenStar = true
			pendingBareStar = kind == paramBareStar
		case paramDoubleStar:
			if pendingBareStar {
				return false
			}

			seenDoubleStar = true
		case paramSlash:
			if seen == 0 || seenSlash || seenStar {
				return false
			}

			seenSlash = true
		}

		seen++
	}

	return !pendingBareStar
}
