package DG

import (
	"fmt"
	"math"

	"github.com/cfddev/gorans/utils"
)

const (
	// Newton-Raphson controls for quadrature root-finding. Convergence is
	// quadratic; a root that has not settled within the cap means the
	// requested order is unusable, which is a configuration error.
	rootTol     = 1.e-15
	rootMaxIter = 25
)

// LegendreGauss returns the N-point Gauss rule on [-1,1]: the nodes are the
// roots of the degree N Legendre polynomial, found by Newton iteration from
// Chebyshev seeds, and the weights follow from the derivative at each root:
//
//	w_i = 2 / ((1 - x_i^2) L'_N(x_i)^2)
func LegendreGauss(N int) (X, W utils.Vector, err error) {
	if N < 1 {
		err = fmt.Errorf("invalid quadrature order %d, must be >= 1", N)
		return
	}
	X, W = utils.NewVector(N), utils.NewVector(N)
	if N == 1 {
		W.Set(0, 2)
		return
	}
	for i := 0; i < N; i++ {
		x := -math.Cos(math.Pi * (2*float64(i) + 1) / (2 * float64(N)))
		x, err = newtonRoot(x, func(x float64) (f, df float64) {
			L0, L0_1, _ := Legendre(N, x)
			return L0, L0_1
		})
		if err != nil {
			err = fmt.Errorf("gauss rule of order %d: %s", N, err)
			return
		}
		_, L0_1, _ := Legendre(N, x)
		X.Set(i, x)
		W.Set(i, 2/((1-x*x)*L0_1*L0_1))
	}
	symmetrize(X, W)
	err = validateRule(N, X, W)
	return
}

// LegendreGaussLobatto returns the N-point Gauss-Lobatto rule on [-1,1]:
// both endpoints plus the N-2 roots of L'_{N-1}, with weights
//
//	w_i = 2 / (N (N-1) L_{N-1}(x_i)^2)
//
// which reduces to 2/(N(N-1)) at the endpoints.
func LegendreGaussLobatto(N int) (X, W utils.Vector, err error) {
	if N < 1 {
		err = fmt.Errorf("invalid quadrature order %d, must be >= 1", N)
		return
	}
	X, W = utils.NewVector(N), utils.NewVector(N)
	if N == 1 {
		W.Set(0, 2)
		return
	}
	q := N - 1
	for i := 0; i < N; i++ {
		x := -math.Cos(math.Pi * float64(i) / float64(q))
		if i > 0 && i < q {
			x, err = newtonRoot(x, func(x float64) (f, df float64) {
				_, L0_1, L0_2 := Legendre(q, x)
				return L0_1, L0_2
			})
			if err != nil {
				err = fmt.Errorf("gauss-lobatto rule of order %d: %s", N, err)
				return
			}
		}
		L0, _, _ := Legendre(q, x)
		X.Set(i, x)
		W.Set(i, 2/(float64(N)*float64(q)*L0*L0))
	}
	symmetrize(X, W)
	err = validateRule(N, X, W)
	return
}

func newtonRoot(x0 float64, eval func(x float64) (f, df float64)) (x float64, err error) {
	x = x0
	for iter := 0; iter < rootMaxIter; iter++ {
		f, df := eval(x)
		dx := -f / df
		x += dx
		if math.Abs(dx) <= rootTol {
			return
		}
	}
	err = fmt.Errorf("newton iteration failed to converge from seed %g", x0)
	return
}

// Legendre-derived node sets are symmetric about 0. Averaging the mirrored
// halves removes the last-bit asymmetry Newton leaves behind, and pins the
// middle node of an odd rule at exactly 0.
func symmetrize(X, W utils.Vector) {
	var (
		n = X.Len()
	)
	for i := 0; i < n/2; i++ {
		m := n - 1 - i
		x := 0.5 * (X.AtVec(i) - X.AtVec(m))
		w := 0.5 * (W.AtVec(i) + W.AtVec(m))
		X.Set(i, x).Set(m, -x)
		W.Set(i, w).Set(m, w)
	}
	if n%2 == 1 {
		X.Set(n/2, 0)
	}
}

func validateRule(N int, X, W utils.Vector) (err error) {
	for i := 0; i < N; i++ {
		if W.AtVec(i) <= 0 {
			return fmt.Errorf("quadrature order %d: non-positive weight %g at node %d",
				N, W.AtVec(i), i)
		}
		if i > 0 && X.AtVec(i)-X.AtVec(i-1) <= utils.NODETOL {
			return fmt.Errorf("quadrature order %d: nodes %d and %d are not distinct and increasing",
				N, i-1, i)
		}
	}
	if math.Abs(W.Sum()-2) > float64(N)*1.e-13 {
		return fmt.Errorf("quadrature order %d: weights sum to %g, want 2", N, W.Sum())
	}
	return
}
