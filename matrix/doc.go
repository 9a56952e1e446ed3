// Package matrix provides the small dense linear-algebra kernel used to
// fold cube nets: row-major float64 matrices, multiplication, matrix-vector
// products, and homogeneous 4×4 builders for translations and quarter turns.
//
// What:
//
//   - Dense: a row-major implementation of the Matrix interface.
//   - Mul, MatVec: strict, fail-fast products with dimension validation.
//   - NewTranslation, NewQuarterTurn, Apply: rigid motions on homogeneous
//     coordinates (x, y, z, 1).
//
// Why float64:
//
//	Every rigid motion built here has entries in {-2,-1,0,1,2}; products of
//	such matrices stay exact in float64, so callers may round results back to
//	integers without drift.
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive rows or cols.
//   - ErrIndexOutOfBounds: row or column outside the matrix.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNilMatrix: a nil Matrix operand.
//   - ErrZeroAxis: a quarter turn between non-unit or parallel axes.
package matrix
