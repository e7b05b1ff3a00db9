// Package stub models the declaration tree of a nanobind module and renders
// it as Python stub text.
//
// A tree is built once by the mapper, in introspection order, and rendered
// once by the exporter. Every node is a Node value tagged with a Kind; the
// differences between variants live in plain fields (Bases, Suppress,
// Signature, Getter/Setter) and in the switch inside Export.
package stub
