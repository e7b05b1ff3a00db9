package pysyntax

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// DefaultCacheSize is the number of validated sources remembered.
const DefaultCacheSize = 4096

// Validator checks that Python source parses without syntax errors.
type Validator struct {
	cache *lru.Cache[string, bool]
}

// NewValidator creates a Validator remembering up to cacheSize results.
func NewValidator(cacheSize int) (*Validator, error) {
	cache, err := lru.New[string, bool](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating validation cache: %w", err)
	}

	return &Validator{cache: cache}, nil
}

// IsValidSignature reports whether "def <sig>:" with a pass body is a single
// well-formed function definition.
func (v *Validator) IsValidSignature(sig string) bool {
	return v.IsValid(DefStatement(sig))
}

// IsValid reports whether code parses as exactly one top-level function
// definition without error or missing nodes.
func (v *Validator) IsValid(code string) bool {
	if ok, found := v.cache.Get(code); found {
		return ok
	}

	ok := parse(code, isSingleDef)
	v.cache.Add(code, ok)

	return ok
}

// DefStatement wraps a signature into a minimal function definition.
func DefStatement(sig string) string {
	return "def " + sig + ":\n    pass\n"
}

// IsValidModule reports whether code parses as a Python module without
// error or missing nodes. Every function definition in it must also satisfy
// the parameter ordering rules.
func IsValidModule(code string) bool {
	return parse(code, validDefinitions)
}

func validDefinitions(n *sitter.Node) bool {
	if n.Type() == "function_definition" {
		if params := n.ChildByFieldName("parameters"); params != nil && !validParameters(params) {
			return false
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if !validDefinitions(n.NamedChild(i)) {
			return false
		}
	}

	return true
}

func isSingleDef(root *sitter.Node) bool {
	if root.NamedChildCount() != 1 {
		return false
	}

	def := root.NamedChild(0)
	if def.Type() != "function_definition" {
		return false
	}

	params := def.ChildByFieldName("parameters")

	return params != nil && validParameters(params)
}

func parse(code string, check func(root *sitter.Node) bool) bool {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(code))
	if err != nil || tree == nil {
		return false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return false
	}

	return check(root)
}
