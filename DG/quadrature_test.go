package DG

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendre(t *testing.T) {
	{
		// p = 0 and p = 1 degenerate cases
		L0, L0_1, L0_2 := Legendre(0, 0.3)
		assert.Equal(t, 1., L0)
		assert.Equal(t, 0., L0_1)
		assert.Equal(t, 0., L0_2)
		L0, L0_1, L0_2 = Legendre(1, 0.3)
		assert.Equal(t, 0.3, L0)
		assert.Equal(t, 1., L0_1)
		assert.Equal(t, 0., L0_2)
	}
	{
		// L_2 = (3x^2 - 1)/2, L_3 = (5x^3 - 3x)/2 against the recurrence
		for _, x := range []float64{-1, -0.7, 0, 0.33, 1} {
			L0, L0_1, L0_2 := Legendre(2, x)
			assert.InDelta(t, (3*x*x-1)/2, L0, 1.e-14)
			assert.InDelta(t, 3*x, L0_1, 1.e-14)
			assert.InDelta(t, 3, L0_2, 1.e-14)
			L0, L0_1, L0_2 = Legendre(3, x)
			assert.InDelta(t, (5*x*x*x-3*x)/2, L0, 1.e-14)
			assert.InDelta(t, (15*x*x-3)/2, L0_1, 1.e-14)
			assert.InDelta(t, 15*x, L0_2, 1.e-14)
		}
	}
	{
		// Endpoint values L_p(1) = 1, L_p(-1) = (-1)^p hold at high order
		for p := 0; p <= 16; p++ {
			L0, _, _ := Legendre(p, 1)
			assert.InDelta(t, 1, L0, 1.e-13)
			L0, _, _ = Legendre(p, -1)
			assert.InDelta(t, math.Pow(-1, float64(p)), L0, 1.e-13)
		}
	}
}

// exact integral of x^k over [-1,1]
func monomialIntegral(k int) float64 {
	if k%2 == 1 {
		return 0
	}
	return 2 / (float64(k) + 1)
}

func TestLegendreGauss(t *testing.T) {
	for N := 1; N <= 12; N++ {
		X, W, err := LegendreGauss(N)
		require.NoError(t, err)
		require.Equal(t, N, X.Len())

		// Nodes strictly interior, increasing, symmetric; weights positive, sum 2
		for i := 0; i < N; i++ {
			assert.True(t, X.AtVec(i) > -1 && X.AtVec(i) < 1)
			assert.True(t, W.AtVec(i) > 0)
			assert.InDelta(t, -X.AtVec(N-1-i), X.AtVec(i), 1.e-14)
			if i > 0 {
				assert.True(t, X.AtVec(i) > X.AtVec(i-1))
			}
		}
		assert.InDelta(t, 2, W.Sum(), 1.e-13)

		// Exact for polynomials of degree <= 2N-1
		for k := 0; k <= 2*N-1; k++ {
			var s float64
			for i := 0; i < N; i++ {
				s += W.AtVec(i) * math.Pow(X.AtVec(i), float64(k))
			}
			assert.InDeltaf(t, monomialIntegral(k), s, 1.e-12,
				"order %d moment %d", N, k)
		}
	}
}

func TestLegendreGaussLobatto(t *testing.T) {
	for N := 2; N <= 12; N++ {
		X, W, err := LegendreGaussLobatto(N)
		require.NoError(t, err)
		require.Equal(t, N, X.Len())

		// Endpoints are exactly +-1 with weight 2/(N(N-1))
		assert.Equal(t, -1., X.AtVec(0))
		assert.Equal(t, 1., X.AtVec(N-1))
		assert.InDelta(t, 2/(float64(N)*float64(N-1)), W.AtVec(0), 1.e-14)
		assert.InDelta(t, W.AtVec(0), W.AtVec(N-1), 1.e-15)

		for i := 0; i < N; i++ {
			assert.True(t, W.AtVec(i) > 0)
			assert.InDelta(t, -X.AtVec(N-1-i), X.AtVec(i), 1.e-14)
			if i > 0 {
				assert.True(t, X.AtVec(i) > X.AtVec(i-1))
			}
		}
		assert.InDelta(t, 2, W.Sum(), 1.e-13)

		// Exact for polynomials of degree <= 2N-3
		for k := 0; k <= 2*N-3; k++ {
			var s float64
			for i := 0; i < N; i++ {
				s += W.AtVec(i) * math.Pow(X.AtVec(i), float64(k))
			}
			assert.InDeltaf(t, monomialIntegral(k), s, 1.e-12,
				"order %d moment %d", N, k)
		}
	}
	{
		// The classic N=3 rule: nodes {-1,0,1}, weights {1/3,4/3,1/3}
		X, W, err := LegendreGaussLobatto(3)
		require.NoError(t, err)
		assert.InDelta(t, -1, X.AtVec(0), 1.e-15)
		assert.InDelta(t, 0, X.AtVec(1), 1.e-15)
		assert.InDelta(t, 1, X.AtVec(2), 1.e-15)
		assert.InDelta(t, 1./3., W.AtVec(0), 1.e-15)
		assert.InDelta(t, 4./3., W.AtVec(1), 1.e-15)
		assert.InDelta(t, 1./3., W.AtVec(2), 1.e-15)
		assert.InDelta(t, 2, W.Sum(), 1.e-15)
		var s float64
		for i := 0; i < 3; i++ {
			s += W.AtVec(i) * X.AtVec(i) * X.AtVec(i)
		}
		assert.InDelta(t, 2./3., s, 1.e-15)
	}
}

func TestQuadratureOrderErrors(t *testing.T) {
	_, _, err := LegendreGauss(0)
	assert.Error(t, err)
	_, _, err = LegendreGauss(-3)
	assert.Error(t, err)
	_, _, err = LegendreGaussLobatto(0)
	assert.Error(t, err)
}
