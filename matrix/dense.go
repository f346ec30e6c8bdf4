package matrix

// Dense is a small row-major float64 matrix, used for the flow and
// descent matrices (spec.md §4.3). It is intentionally narrower than the
// teacher's matrix.Matrix interface (no Add/Mul/Clone-as-interface
// machinery) since flows/descents only ever need At/Set over a fixed
// square shape built once per path evaluation and discarded.
type Dense struct {
	n    int
	data []float64
}

// NewDense returns an n x n Dense matrix with every cell initialised to
// fill.
func NewDense(n int, fill float64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	d := &Dense{n: n, data: make([]float64, n*n)}
	for i := range d.data {
		d.data[i] = fill
	}
	return d, nil
}

// Dim returns the matrix's row/column count (Dense is always square).
func (d *Dense) Dim() int { return d.n }

// At returns the value at (i,j).
func (d *Dense) At(i, j int) (float64, error) {
	if !d.inBounds(i, j) {
		return 0, ErrOutOfRange
	}
	return d.data[i*d.n+j], nil
}

// Set assigns v at (i,j).
func (d *Dense) Set(i, j int, v float64) error {
	if !d.inBounds(i, j) {
		return ErrOutOfRange
	}
	d.data[i*d.n+j] = v
	return nil
}

func (d *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < d.n && j >= 0 && j < d.n
}
