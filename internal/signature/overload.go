package signature

import (
	"regexp"
	"strings"

	"nanobind-stubgen/internal/common"
)

// bulletPattern matches "1. ``foo(x: int) -> int``".
var bulletPattern = regexp.MustCompile("^\\s*\\d+\\.\\s+``(.+?)``\\s*$")

// Resolve recovers every declaration embedded in doc. The first entry is the
// primary signature, the rest are overloads. The result is never empty and
// never holds two entries with the same text.
func (r *Recoverer) Resolve(path, name, doc string, quiet bool) []Signature {
	if strings.TrimSpace(doc) == "" {
		return []Signature{Fallback(name)}
	}

	lines := splitLines(strings.TrimRight(doc, " \t\r\n"))

	if sigs, found := r.repeatedPrefix(path, name, lines, quiet); found {
		if len(sigs) == 0 {
			return []Signature{Fallback(name)}
		}

		return sigs
	}

	if sigs, found := r.bullets(path, name, lines, quiet); found && len(sigs) > 0 {
		return sigs
	}

	return []Signature{r.Recover(path, name, doc, quiet)}
}

// repeatedPrefix handles documentation where every line is a declaration of
// the same callable.
func (r *Recoverer) repeatedPrefix(path, name string, lines []string, quiet bool) ([]Signature, bool) {
	if !common.IsMultiple(lines) {
		return nil, false
	}

	for _, l := range lines {
		if !strings.HasPrefix(l, name) {
			return nil, false
		}
	}

	var sigs []Signature

	for _, l := range lines {
		if sig, ok := r.candidate(path, name, l, quiet); ok {
			sigs = append(sigs, sig)
		}
	}

	return dedupe(sigs), true
}

type bulletEntry struct {
	text string
	doc  []string
}

// bullets handles "Overloaded function." style documentation. Lines before
// the first bullet belong to the primary signature, which is discarded once
// two or more bullets are found.
func (r *Recoverer) bullets(path, name string, lines []string, quiet bool) ([]Signature, bool) {
	var entries []bulletEntry

	for _, l := range lines {
		if m := bulletPattern.FindStringSubmatch(l); m != nil {
			entries = append(entries, bulletEntry{text: m[1]})

			continue
		}

		if len(entries) > 0 {
			last := &entries[len(entries)-1]
			last.doc = append(last.doc, l)
		}
	}

	if !common.IsMultiple(entries) {
		return nil, false
	}

	var sigs []Signature

	for _, e := range entries {
		sig, ok := r.candidate(path, name, e.text, quiet)
		if !ok {
			continue
		}

		sig.Doc = joinTrimmed(e.doc)
		sigs = append(sigs, sig)
	}

	return dedupe(sigs), true
}

// dedupe drops signatures whose text repeats an earlier one.
func dedupe(sigs []Signature) []Signature {
	seen := make(map[string]struct{}, len(sigs))
	out := sigs[:0]

	for _, s := range sigs {
		if _, ok := seen[s.Text]; ok {
			continue
		}

		seen[s.Text] = struct{}{}
		out = append(out, s)
	}

	return out
}
