// Package objwalk flattens arbitrary nested Go values into a single-level
// mapping of dotted paths to leaf values.
//
// A walk starts at a root value, classifies every value it meets as a
// scalar, sequence, map or record, and emits one entry per visited node:
//
//	res, _ := objwalk.Flatten(map[string]any{"a": 1, "b": map[string]any{"c": 2}})
//	// root['a']    = 1
//	// root['b']    = map[c:2]
//	// root['b']['c'] = 2
//
// Field names, bracketed indices and quoted keys compose the paths. Glob
// patterns (WithExclude, WithInclude, WithValueFilter) filter what is
// emitted, WithMaxDepth bounds recursion, and pluggable SkipRules guard
// against the self-referential fields some runtime wrapper types expose.
package objwalk
