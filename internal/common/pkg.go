package common

import "strings"

// QualifiedName joins a dotted parent path and a member name.
// Returns name unchanged if parent is empty.
func QualifiedName(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}

// LastSegment returns the last element of a dotted path.
func LastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}

	return path
}
