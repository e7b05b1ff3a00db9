package signature

import (
	"strings"

	"nanobind-stubgen/internal/diagnostic"
	"nanobind-stubgen/internal/pysyntax"
	"nanobind-stubgen/internal/typetoken"
)

// Validator decides whether a declaration text is syntactically valid.
type Validator interface {
	IsValidSignature(sig string) bool
}

// Recoverer turns documentation strings into signatures.
// It never fails; problems are reported to the diagnostics sink.
type Recoverer struct {
	validator Validator
	diags     *diagnostic.Diagnostics
}

// NewRecoverer creates a Recoverer reporting into diags.
func NewRecoverer(validator Validator, diags *diagnostic.Diagnostics) *Recoverer {
	return &Recoverer{validator: validator, diags: diags}
}

// Recover extracts the declaration on the first documentation line of the
// member at path. The remaining non-blank lines become the trailing doc.
// quiet suppresses the invalid-signature warning for members whose
// documentation is known to be unreliable, such as native constructors.
func (r *Recoverer) Recover(path, name, doc string, quiet bool) Signature {
	if strings.TrimSpace(doc) == "" {
		return Fallback(name)
	}

	lines := splitLines(doc)

	sig, ok := r.candidate(path, name, lines[0], quiet)
	if !ok {
		return Fallback(name)
	}

	sig.Doc = joinNonBlank(lines[1:])

	return sig
}

// candidate validates one documentation-embedded declaration. The returned
// text has been through the type-token rewriter.
func (r *Recoverer) candidate(path, name, line string, quiet bool) (Signature, bool) {
	text := strings.TrimSpace(line)

	callName := CallableName(text)
	if pysyntax.IsKeyword(callName) {
		r.diags.AddWarning(diagnostic.CodeKeywordName,
			"callable is named like a Python keyword ("+callName+")", path, text)
	}

	rewritten := typetoken.Rewrite(text)
	if !r.validator.IsValidSignature(rewritten) {
		if !quiet {
			r.diags.AddWarning(diagnostic.CodeInvalidSignature,
				"documented signature is not valid Python", path, text)
		}

		return Signature{}, false
	}

	if callName != name {
		return Signature{}, false
	}

	return Signature{Name: name, Text: rewritten}, true
}
