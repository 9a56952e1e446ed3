package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Callers match
// them with errors.Is; functions wrap them with the operation name.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil Matrix")

	// ErrZeroAxis indicates a quarter turn requested between axes that are
	// not orthogonal unit vectors.
	ErrZeroAxis = errors.New("matrix: quarter turn needs orthogonal unit axes")
)
