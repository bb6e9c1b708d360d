package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixBasics(t *testing.T) {
	A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	B := A.Copy().Scale(2)
	assert.Equal(t, 1., A.At(0, 0))
	assert.Equal(t, 8., B.At(1, 1))

	C := A.Mul(B)
	// [1 2; 3 4] * [2 4; 6 8]
	assert.Equal(t, 14., C.At(0, 0))
	assert.Equal(t, 20., C.At(0, 1))
	assert.Equal(t, 30., C.At(1, 0))
	assert.Equal(t, 44., C.At(1, 1))

	Ainv, err := A.Inverse()
	require.NoError(t, err)
	Id := A.Mul(Ainv)
	assert.InDelta(t, 1, Id.At(0, 0), 1.e-12)
	assert.InDelta(t, 0, Id.At(0, 1), 1.e-12)

	assert.InDelta(t, 3, A.SumRows().AtVec(0), 1.e-15)
	assert.InDelta(t, 4, A.SumCols().AtVec(0), 1.e-15)
	assert.InDelta(t, 2, A.Transpose().At(1, 0), 1.e-15)
	assert.Equal(t, []float64{3, 4}, A.Row(1).DataP)
	assert.Equal(t, []float64{2, 4}, A.Col(1).DataP)

	D := NewMatrix(2, 2).Set(0, 0, 5).SetCol(1, []float64{6, 7})
	assert.Equal(t, []float64{5, 6, 0, 7}, D.DataP)
	D.Apply(func(x float64) float64 { return x + 1 }).AddScalar(1)
	assert.Equal(t, []float64{7, 8, 2, 9}, D.DataP)
}

func TestSingularInverse(t *testing.T) {
	A := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	_, err := A.Inverse()
	assert.Error(t, err)
}

func TestVectorBasics(t *testing.T) {
	v := NewVector(3, []float64{3, -1, 2})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, -1., v.Min())
	assert.Equal(t, 3., v.Max())
	assert.Equal(t, 4., v.Sum())

	w := v.Copy().AddScalar(1).Scale(2)
	assert.Equal(t, []float64{8, 0, 6}, w.DataP)
	// the source is untouched
	assert.Equal(t, []float64{3, -1, 2}, v.DataP)

	assert.Equal(t, ConstArray(3, 2), NewVector(3).SetConst(2).DataP)
	assert.Equal(t, []float64{9, -3, 6}, v.Apply(func(x float64) float64 { return 3 * x }).DataP)

	assert.Panics(t, func() { NewVector(2, []float64{1}) })
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
}

func TestPOW(t *testing.T) {
	assert.Equal(t, 8., POW(2, 3))
	assert.Equal(t, 1., POW(7, 0))
	assert.Equal(t, 0.25, POW(2, -2))
	assert.InDelta(t, 1024, POW(2, 10), 1.e-12)
}
