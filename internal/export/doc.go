// Package export plans and writes the .pyi artifacts of a stub tree.
//
// A module without sub-modules becomes "<name>.pyi". A module with
// sub-modules becomes the package directory "<name>/" holding "__init__.pyi"
// and one artifact per sub-module, recursively. Each artifact is rendered in
// memory and written in one call, parents before children.
package export
