package DG

import (
	"github.com/cfddev/gorans/utils"
)

// CardinalBasis evaluates the i-th Lagrange interpolant built on the node
// set xgl at every node of the set. On its own nodes the cardinal basis is
// the Kronecker delta e_i; the product form is kept so the same routine can
// verify that property rather than assume it.
func CardinalBasis(i int, xgl utils.Vector) (psi []float64) {
	var (
		N = xgl.Len()
	)
	psi = make([]float64, N)
	for j := 0; j < N; j++ {
		v := 1.
		for k := 0; k < N; k++ {
			if k == i {
				continue
			}
			v *= (xgl.AtVec(j) - xgl.AtVec(k)) / (xgl.AtVec(i) - xgl.AtVec(k))
		}
		psi[j] = v
	}
	return
}

// LagrangeBasisDerivative evaluates the derivative of the i-th Lagrange
// interpolant at every node via the pairwise-difference formulas
//
//	l'_i(x_i) = sum_{k != i} 1/(x_i - x_k)
//	l'_i(x_j) = prod_{k != i,j} (x_j - x_k) / prod_{k != i} (x_i - x_k)
//
// exact for polynomials up to degree N-1 on any distinct node set.
func LagrangeBasisDerivative(i int, xgl utils.Vector) (dpsi []float64) {
	var (
		N = xgl.Len()
	)
	dpsi = make([]float64, N)
	for j := 0; j < N; j++ {
		if j == i {
			for k := 0; k < N; k++ {
				if k != i {
					dpsi[j] += 1 / (xgl.AtVec(i) - xgl.AtVec(k))
				}
			}
			continue
		}
		num, den := 1., 1.
		for k := 0; k < N; k++ {
			if k == i {
				continue
			}
			den *= xgl.AtVec(i) - xgl.AtVec(k)
			if k != j {
				num *= xgl.AtVec(j) - xgl.AtVec(k)
			}
		}
		dpsi[j] = num / den
	}
	return
}

// LegendreBasisDerivative is the closed-form alternative to
// LagrangeBasisDerivative valid when xgl are the Legendre-Gauss-Lobatto
// nodes:
//
//	l'_i(x_j) = L_q(x_j) / (L_q(x_i) (x_j - x_i)),  j != i, q = N-1
//	l'_0(x_0) = -q(q+1)/4,  l'_q(x_q) = q(q+1)/4,  else 0
func LegendreBasisDerivative(i int, xgl utils.Vector) (dpsi []float64) {
	var (
		N = xgl.Len()
		q = N - 1
	)
	dpsi = make([]float64, N)
	if N == 1 {
		return
	}
	Li, _, _ := Legendre(q, xgl.AtVec(i))
	for j := 0; j < N; j++ {
		if j == i {
			switch i {
			case 0:
				dpsi[j] = -float64(q) * float64(q+1) / 4
			case q:
				dpsi[j] = float64(q) * float64(q+1) / 4
			}
			continue
		}
		Lj, _, _ := Legendre(q, xgl.AtVec(j))
		dpsi[j] = Lj / (Li * (xgl.AtVec(j) - xgl.AtVec(i)))
	}
	return
}
