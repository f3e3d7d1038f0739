// Package geo — dense distance matrices over ordered point sequences.
//
// Dense is a row-major flat-buffer implementation of the Matrix interface:
// a single []float64 of length n·n, indexed as data[i*n+j]. This keeps matrix
// construction to one allocation and makes row scans cache-friendly, which is
// what the 2-opt hot loop in package route wants.
//
// Contracts:
//   - Matrices built by BuildMatrix are square, symmetric, non-negative, with
//     a zero diagonal. Symmetry is a consequence of Haversine's symmetry, not
//     something Set enforces.
//   - Public indexers return ErrOutOfRange instead of panicking.
//
// Complexity: BuildMatrix O(n²) time, O(n²) space; At/Set O(1).
package geo

// Matrix is the read surface consumed by package route.
// Implementations must return ErrOutOfRange for invalid indices.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the entry at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
}

// Dense is a row-major n×n float64 matrix backed by a flat slice.
type Dense struct {
	n    int       // matrix order
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// n == 0 is legal and yields an empty matrix; negative n is ErrBadShape.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// Rows returns the matrix order.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// Cols returns the matrix order (Dense distance matrices are square).
// Complexity: O(1).
func (m *Dense) Cols() int { return m.n }

// At returns the entry at (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.n+j], nil
}

// Set writes the entry at (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrOutOfRange
	}
	m.data[i*m.n+j] = v

	return nil
}

// BuildMatrix computes the full pairwise haversine distance matrix for pts.
//
// The diagonal stays 0; each off-diagonal pair is computed once and mirrored,
// so matrix[i][j] == matrix[j][i] holds exactly (not merely to FP precision).
// Empty and single-point sequences yield 0×0 and 1×1 zero matrices.
//
// Complexity: O(n²) time, O(n²) space.
func BuildMatrix(pts []Point) *Dense {
	n := len(pts)
	m := &Dense{n: n, data: make([]float64, n*n)}

	var (
		i, j int     // pair indices
		d    float64 // haversine distance for the current pair
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Haversine(pts[i], pts[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m
}
