// Package sparse defines the shared data model for all sparseops routines:
// the generic sparse Vector and sparse Matrix types, plus small reduction
// helpers used by the algebra packages.
//
// What:
//
//   - Vector[K] maps a comparable key (a feature name, a class label, an
//     integer index) to a float64 weight. An absent key denotes the value 0.
//   - Matrix[K] maps a Key[K] (row-key, column-key) pair to a float64 value.
//     An absent pair denotes 0.
//   - Prod reduces a sequence of numbers to their product, with the
//     empty-product identity 1.
//
// Why:
//
//   - Online learners see feature spaces that are enormous on paper but
//     mostly zero per example; a keyed mapping stores only what is nonzero.
//   - A shared representation lets linalg and transform compose freely:
//     every routine accepts any two operands with compatible key sets and
//     treats missing keys as zero.
//
// Contracts:
//
//   - Vectors and matrices carry no fixed dimensionality. Nothing in this
//     package validates shapes; "absent = 0" is the only rule.
//   - Types are plain map types. Routines documented as in-place mutate the
//     caller's map; everything else treats inputs as read-only and returns
//     freshly allocated maps. Concurrent mutation of a shared map must be
//     serialized by the caller; this package provides no locking.
package sparse
