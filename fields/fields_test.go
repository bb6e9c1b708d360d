package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTensorDecomposition(t *testing.T) {
	g := Tensor{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}

	// sym + skw reassembles the tensor
	S := g.Sym().Full()
	O := g.Skw()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, g[i][j], S[i][j]+O[i][j], 1.e-14)
		}
	}

	// dev removes the trace
	assert.InDelta(t, 0, g.Dev(1).Trace(), 1.e-14)
	assert.InDelta(t, 0, g.Sym().Dev(1).Trace(), 1.e-14)
	// dev with factor 2 removes it twice over
	assert.InDelta(t, -g.Trace(), g.Dev(2).Trace(), 1.e-14)
}

func TestTensorInverse(t *testing.T) {
	g := Tensor{{2, 1, 0}, {0, 3, 1}, {1, 0, 4}}
	inv, det := g.Inverse()
	assert.InDelta(t, 25, det, 1.e-13)

	// g * inv = I
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += g[i][k] * inv[k][j]
			}
			assert.InDeltaf(t, I[i][j], s, 1.e-13, "entry (%d,%d)", i, j)
		}
	}

	_, det = Tensor{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Inverse()
	assert.Equal(t, 0., det)
}

func TestDoubleDotConsistency(t *testing.T) {
	// The compressed symmetric contraction matches the full 3x3 one
	g := Tensor{{1, 2, 3}, {2, 5, 6}, {3, 6, 9}}
	s := g.Sym()
	assert.InDelta(t, g.Dot(g), s.Dot(s), 1.e-12)
}

func TestVectorTensorContraction(t *testing.T) {
	v := Vector{1, 2, 3}
	r := v.MulTensor(I.Scale(2))
	assert.Equal(t, Vector{2, 4, 6}, r)
	assert.InDelta(t, 14, v.Dot(v), 1.e-14)
	assert.InDelta(t, 14, v.Mag()*v.Mag(), 1.e-12)
}
