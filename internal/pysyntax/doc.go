// Package pysyntax answers syntactic questions about Python declarations.
//
// Validation uses the tree-sitter Python grammar, so it needs cgo. Results
// are cached per source text since overloads and accessors repeat the same
// headers many times in one module.
package pysyntax
