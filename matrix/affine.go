package matrix

// Homogeneous 4×4 builders. A point p is carried as (p.x, p.y, p.z, 1);
// the last column of a rigid motion holds its translation.

const homogeneous = 4

// NewTranslation returns the rigid motion p ↦ p + v.
// Complexity: O(1).
func NewTranslation(v Vec3) *Dense {
	m, _ := NewIdentity(homogeneous)
	for i := 0; i < 3; i++ {
		m.data[i*homogeneous+3] = v[i]
	}

	return m
}

// NewQuarterTurn returns the 90° rotation about the origin that carries the
// unit axis from onto the unit axis to (and to onto -from), leaving the axis
// orthogonal to both fixed:
//
//	R = I - f·fᵀ - t·tᵀ + t·fᵀ - f·tᵀ
//
// Returns ErrZeroAxis unless from and to are orthogonal unit vectors.
// Complexity: O(1).
func NewQuarterTurn(from, to Vec3) (*Dense, error) {
	if dot(from, from) != 1 || dot(to, to) != 1 || dot(from, to) != 0 {
		return nil, matrixErrorf("NewQuarterTurn", ErrZeroAxis)
	}
	m, _ := NewIdentity(homogeneous)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.data[i*homogeneous+j] += -from[i]*from[j] - to[i]*to[j] + to[i]*from[j] - from[i]*to[j]
		}
	}

	return m, nil
}

// NewHinge returns the motion that creases the plane about the line through
// pivot along the axis orthogonal to both from and to: translate pivot to the
// origin, turn from onto to, translate back.
// Complexity: O(1).
func NewHinge(pivot, from, to Vec3) (Matrix, error) {
	turn, err := NewQuarterTurn(from, to)
	if err != nil {
		return nil, err
	}
	back := Vec3{-pivot[0], -pivot[1], -pivot[2]}

	return Compose(NewTranslation(pivot), turn, NewTranslation(back))
}

// Apply maps the point p through the homogeneous transform m.
// Complexity: O(1) for 4×4 input.
func Apply(m Matrix, p Vec3) (Vec3, error) {
	if err := ValidateNotNil(m); err != nil {
		return Vec3{}, matrixErrorf(opApply, err)
	}
	y, err := MatVec(m, []float64{p[0], p[1], p[2], 1})
	if err != nil {
		return Vec3{}, matrixErrorf(opApply, err)
	}

	return Vec3{y[0], y[1], y[2]}, nil
}

func dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
