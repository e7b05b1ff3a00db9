// Package typetoken rewrites foreign type spellings found in nanobind
// signatures into a portable Python typing vocabulary.
//
// The rewrite is an ordered, single-pass pipeline of regular expressions:
//   - native ndarray tokens become numpy.typing.NDArray
//   - opaque "<T object at 0x...>" reprs become an ellipsis
//   - std::pair / std::tuple become typing.Tuple
//   - tensor tokens become numpy.typing.NDArray
//
// Nested std::tuple tokens are only rewritten one level per pass, since a
// regular expression cannot balance the angle brackets.
package typetoken
