// Package coerce defines scalar kinds and the conversion rules between them.
//
// The semantics follow Python's built-in int(), float(), str(), and bool()
// constructors:
//   - numeric text is trimmed before parsing
//   - formatting a float yields the shortest round-trip digits, keeps ".0"
//     on whole numbers, and switches to exponent notation for very large
//     or very small magnitudes
//   - truthiness is "nonzero" for numbers and a case-insensitive match
//     against "true" for strings
//
// The Golden Rule: pkg/coerce imports ONLY the standard library.
// The pipeline and the CLI depend on coerce, not the reverse.
package coerce
