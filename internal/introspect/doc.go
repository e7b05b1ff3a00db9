// Package introspect describes the runtime metadata of a Python module as
// seen by the stub generator.
//
// The Object interface is what the mapper consumes. Two sources provide it:
//   - Snapshot: a serialized member tree (YAML or JSON) loaded from disk
//   - Probe: a Python interpreter that imports the module and prints a
//     Snapshot as JSON
package introspect
