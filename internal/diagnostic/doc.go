// Package diagnostic collects the findings of a stub generation run.
//
// Findings are gathered in an explicit sink passed to the recoverer and the
// mapper, then surfaced once at the end of the run:
//   - reserved keyword used as a callable name
//   - documentation signature that fails validation
//   - member that no mapping rule classifies
//   - plain Python routine declared with the generic signature (info)
//   - failure that ended the run (error)
package diagnostic
