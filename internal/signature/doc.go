// Package signature recovers Python callable declarations from the
// documentation strings nanobind attaches to native functions.
//
// Recovery is best effort: every failure path degrades to the generic
// variadic signature name(*args, **kwargs), which always validates for a
// non-keyword name. Overloads are detected from two documentation
// conventions:
//   - one signature per line, every line starting with the callable name
//   - numbered bullets of the form "1. ``sig``" followed by free text
package signature
