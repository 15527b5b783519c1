// Package sparse: Vector, Key, and Matrix type declarations with
// get-or-zero accessors and cloning helpers.

package sparse

// Vector is a sparse vector: a mapping from key to weight where an absent
// key denotes the implicit value 0. Key order carries no meaning.
//
// A Vector is an ordinary Go map; assignment, deletion, and iteration work
// as usual. Routines that mutate a Vector in place say so explicitly in
// their documentation; all others treat it as read-only input.
type Vector[K comparable] map[K]float64

// Get returns the weight stored under k, or 0 if k is absent.
// This is the canonical "absent = 0" accessor; prefer it over raw indexing
// when the distinction between "stored zero" and "missing" does not matter.
func (v Vector[K]) Get(k K) float64 {
	return v[k]
}

// Clone returns a fresh Vector holding the same entries as v.
// A nil Vector clones to nil.
func (v Vector[K]) Clone() Vector[K] {
	if v == nil {
		return nil
	}
	out := make(Vector[K], len(v))
	for k, w := range v {
		out[k] = w
	}
	return out
}

// Key addresses a single matrix cell by its (row-key, column-key) pair.
// Both coordinates share the comparable key type K, so a Key is itself
// comparable and usable as a map key.
type Key[K comparable] struct {
	// Row is the row coordinate of the cell.
	Row K

	// Col is the column coordinate of the cell.
	Col K
}

// Matrix is a sparse 2-D matrix: a mapping from (row-key, column-key)
// pairs to values where an absent pair denotes the implicit value 0.
//
// A Matrix carries no shape. Rows and columns may index different key
// spaces (a true rectangular matrix) or the same one (a square matrix,
// as in rank-one inverse maintenance).
type Matrix[K comparable] map[Key[K]]float64

// At returns the value stored at (row, col), or 0 if the cell is absent.
func (m Matrix[K]) At(row, col K) float64 {
	return m[Key[K]{Row: row, Col: col}]
}

// Get returns the value stored under k, or 0 if k is absent.
func (m Matrix[K]) Get(k Key[K]) float64 {
	return m[k]
}

// Clone returns a fresh Matrix holding the same entries as m.
// A nil Matrix clones to nil.
func (m Matrix[K]) Clone() Matrix[K] {
	if m == nil {
		return nil
	}
	out := make(Matrix[K], len(m))
	for k, x := range m {
		out[k] = x
	}
	return out
}
