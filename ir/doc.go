// Package ir provides the intermediate representation for HOCON documents.
//
// A Node is a tagged union covering both the resolved value kinds of
// spec.md §3 (null, bool, number, string, array, object) and the raw,
// pre-resolution expression kinds that only exist between parsing and
// resolution: substitutions (${path}, ${?path}), concatenations, and
// include sites. After a successful Resolve, a tree contains no node
// of SubstitutionType, ConcatType or IncludeType anywhere.
//
// Objects are represented as parallel Fields/Values slices rather than a
// map so that insertion order - which HOCON's merge semantics require to
// be preserved - is part of the type rather than bolted on separately.
package ir
