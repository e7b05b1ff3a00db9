// Package mapper turns introspected members into a stub tree.
//
// Members are visited in the order the introspection source supplies them,
// without sorting or deduplication. Names starting with an underscore are
// skipped, except __init__. Classification, first match wins:
//   - class (nb_enum marker makes it an enum)
//   - module (only inside modules)
//   - routine (native markers get their signatures recovered)
//   - property
//   - anything else becomes a constant
package mapper
