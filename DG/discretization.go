package DG

import (
	"fmt"
	"strings"

	"github.com/cfddev/gorans/fields"
	"github.com/cfddev/gorans/utils"
)

type QuadratureRule uint8

const (
	Gauss QuadratureRule = iota
	GaussLobatto
)

func (r QuadratureRule) String() string {
	switch r {
	case Gauss:
		return "Gauss"
	case GaussLobatto:
		return "GaussLobatto"
	}
	return "Unknown"
}

func ParseQuadratureRule(label string) (r QuadratureRule, err error) {
	switch strings.ToLower(label) {
	case "gauss":
		r = Gauss
	case "gausslobatto", "lobatto", "":
		r = GaussLobatto
	default:
		err = fmt.Errorf("unknown quadrature rule %q", label)
	}
	return
}

// Discretization is the basis and quadrature state for one run: one-time
// construction, read-only afterwards. It is an explicit value so tests and
// multi-solver setups can hold independent discretizations; concurrent
// readers are safe once the constructor returns.
//
// Per direction d, Psi[d] and Dpsi[d] are square tables with row = basis
// function index and column = node index.
type Discretization struct {
	NPX, NPY, NPZ int
	NP            int // nodes per element, NPX*NPY*NPZ
	NPF           int // nodes per face, NPX*NPY on uniform-order meshes
	Rule          QuadratureRule
	Xgl, Wgl      [3]utils.Vector
	Psi, Dpsi     [3]utils.Matrix
}

// NewDiscretization builds the per-direction quadrature and nodal basis
// tables for the order triple (npx, npy, npz).
func NewDiscretization(npx, npy, npz int, rule QuadratureRule) (el *Discretization, err error) {
	el = &Discretization{
		NPX:  npx,
		NPY:  npy,
		NPZ:  npz,
		NP:   npx * npy * npz,
		NPF:  npx * npy,
		Rule: rule,
	}
	for d, np := range [3]int{npx, npy, npz} {
		if np < 1 {
			return nil, fmt.Errorf("invalid polynomial order %d in direction %d, must be >= 1", np, d)
		}
		switch rule {
		case Gauss:
			el.Xgl[d], el.Wgl[d], err = LegendreGauss(np)
		case GaussLobatto:
			el.Xgl[d], el.Wgl[d], err = LegendreGaussLobatto(np)
		default:
			err = fmt.Errorf("unknown quadrature rule %d", rule)
		}
		if err != nil {
			return nil, fmt.Errorf("direction %d: %s", d, err)
		}
		el.Psi[d] = utils.NewMatrix(np, np)
		el.Dpsi[d] = utils.NewMatrix(np, np)
		for i := 0; i < np; i++ {
			el.Psi[d].SetRow(i, CardinalBasis(i, el.Xgl[d]))
			if rule == GaussLobatto {
				// closed form on LGL nodes, pairwise differences otherwise
				el.Dpsi[d].SetRow(i, LegendreBasisDerivative(i, el.Xgl[d]))
			} else {
				el.Dpsi[d].SetRow(i, LagrangeBasisDerivative(i, el.Xgl[d]))
			}
		}
	}
	return
}

// Index3 flattens the node triple (i,j,k) row-major with k fastest:
// i*NPY*NPZ + j*NPZ + k. The mapping is a bijection onto [0, NP).
func (el *Discretization) Index3(i, j, k int) int {
	return (i*el.NPY+j)*el.NPZ + k
}

// Index4 prepends a component index: c*NP + Index3(i,j,k), a bijection onto
// [0, NC*NP) for NC components.
func (el *Discretization) Index4(c, i, j, k int) int {
	return c*el.NP + el.Index3(i, j, k)
}

// Unindex3 inverts Index3.
func (el *Discretization) Unindex3(ind int) (i, j, k int) {
	k = ind % el.NPZ
	ind /= el.NPZ
	j = ind % el.NPY
	i = ind / el.NPY
	return
}

// GradPsi is the reference-space gradient of the tensor-product basis
// function (ii,jj,kk) at the tensor-product node (i,j,k): along each
// direction the derivative factor replaces the value factor, per the
// product rule for separable functions. Composition with the inverse
// Jacobian (Geometry.PhysicalGrad) turns it into a physical-space gradient.
func (el *Discretization) GradPsi(ii, jj, kk, i, j, k int) (g fields.Vector) {
	g[0] = el.Dpsi[0].At(ii, i) * el.Psi[1].At(jj, j) * el.Psi[2].At(kk, k)
	g[1] = el.Psi[0].At(ii, i) * el.Dpsi[1].At(jj, j) * el.Psi[2].At(kk, k)
	g[2] = el.Psi[0].At(ii, i) * el.Psi[1].At(jj, j) * el.Dpsi[2].At(kk, k)
	return
}

func (el *Discretization) Print() {
	fmt.Printf("[%d %d %d]\t\t= Polynomial Order (NPX NPY NPZ)\n", el.NPX, el.NPY, el.NPZ)
	fmt.Printf("[%d]\t\t\t= Nodes Per Element\n", el.NP)
	fmt.Printf("[%s]\t\t= Quadrature Rule\n", el.Rule)
	for d := 0; d < 3; d++ {
		fmt.Printf("xgl[%d] = %v\n", d, el.Xgl[d].DataP)
		fmt.Printf("wgl[%d] = %v\n", d, el.Wgl[d].DataP)
	}
}
