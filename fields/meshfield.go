package fields

import "math"

func sqrt(x float64) float64 { return math.Sqrt(x) }

// Mesh fields are flat, linearly addressable storage over the whole mesh,
// owned by the solver. The discretization reads and writes them only through
// computed offsets.
type (
	ScalarField  []float64
	VectorField  []Vector
	TensorField  []Tensor
	STensorField []STensor
)

func NewScalarField(n int) ScalarField   { return make(ScalarField, n) }
func NewVectorField(n int) VectorField   { return make(VectorField, n) }
func NewTensorField(n int) TensorField   { return make(TensorField, n) }
func NewSTensorField(n int) STensorField { return make(STensorField, n) }
