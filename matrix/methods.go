package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opCompose = "Compose"
	opApply   = "Apply"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): triple loop, with fast-path for *Dense.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := 0; i < aRows; i++ {
			for k := 0; k < aCols; k++ {
				av := da.data[i*aCols+k]
				if av == 0 {
					continue // skip zero; rigid motions are mostly zeros
				}
				for j := 0; j < bCols; j++ {
					res.data[i*bCols+j] += av * db.data[k*bCols+j]
				}
			}
		}
		return res, nil
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			var sum float64
			for k := 0; k < aCols; k++ {
				av, _ := a.At(i, k)
				bv, _ := b.At(k, j)
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Compose multiplies ms left to right: Compose(A, B, C) == A×B×C.
// A transform built this way applies C first when multiplied onto a column
// vector.
// Complexity: O(len(ms)·n^3) for n×n operands.
func Compose(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opCompose, ErrNilMatrix)
	}
	acc := ms[0]
	if err := ValidateNotNil(acc); err != nil {
		return nil, matrixErrorf(opCompose, err)
	}
	acc = acc.Clone()
	for _, m := range ms[1:] {
		next, err := Mul(acc, m)
		if err != nil {
			return nil, matrixErrorf(opCompose, err)
		}
		acc = next
	}

	return acc, nil
}

// MatVec computes y = m·x.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			var sum float64
			row := d.data[i*cols : (i+1)*cols]
			for j, v := range row {
				sum += v * x[j]
			}
			y[i] = sum
		}
		return y, nil
	}
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
