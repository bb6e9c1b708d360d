package DG

import (
	"fmt"

	"github.com/cfddev/gorans/fields"
	"github.com/cfddev/gorans/utils"
)

// Geometry carries the per-node inverse Jacobian of the reference-to-
// physical map for every element. Built once per mesh geometry by InitGeom
// and read-only afterwards; a mesh geometry change means a rebuild, which
// is the owner's responsibility.
type Geometry struct {
	K    int
	Jinv fields.TensorField // K*NP entries, element-major, Index3 within
	Jdet fields.ScalarField
}

// InitGeom computes the Jacobian J[m][n] = dx_m/dxi_n at every solution
// node of every element from the nodal physical positions X (K*NP entries,
// element e node (i,j,k) at e*NP+Index3(i,j,k)) and the derivative tables,
// then inverts it. Because the basis is cardinal on the same nodes, the
// full tensor-product sum collapses to a single 1-D contraction per
// direction.
//
// A non-positive determinant means a degenerate or inverted element and
// fails the build with the offending element identified; no repair is
// attempted here.
func (el *Discretization) InitGeom(K int, X fields.VectorField) (geom *Geometry, err error) {
	if len(X) != K*el.NP {
		return nil, fmt.Errorf("nodal coordinate field has %d entries, want %d", len(X), K*el.NP)
	}
	geom = &Geometry{
		K:    K,
		Jinv: fields.NewTensorField(K * el.NP),
		Jdet: fields.NewScalarField(K * el.NP),
	}
	for e := 0; e < K; e++ {
		base := e * el.NP
		for i := 0; i < el.NPX; i++ {
			for j := 0; j < el.NPY; j++ {
				for k := 0; k < el.NPZ; k++ {
					var J fields.Tensor
					for ii := 0; ii < el.NPX; ii++ {
						d := el.Dpsi[0].At(ii, i)
						x := X[base+el.Index3(ii, j, k)]
						for m := 0; m < 3; m++ {
							J[m][0] += d * x[m]
						}
					}
					for jj := 0; jj < el.NPY; jj++ {
						d := el.Dpsi[1].At(jj, j)
						x := X[base+el.Index3(i, jj, k)]
						for m := 0; m < 3; m++ {
							J[m][1] += d * x[m]
						}
					}
					for kk := 0; kk < el.NPZ; kk++ {
						d := el.Dpsi[2].At(kk, k)
						x := X[base+el.Index3(i, j, kk)]
						for m := 0; m < 3; m++ {
							J[m][2] += d * x[m]
						}
					}
					Jinv, det := J.Inverse()
					if det <= utils.NODETOL {
						return nil, fmt.Errorf(
							"element %d: non-positive jacobian determinant %g at node (%d,%d,%d)",
							e, det, i, j, k)
					}
					ind := base + el.Index3(i, j, k)
					geom.Jinv[ind] = Jinv
					geom.Jdet[ind] = det
				}
			}
		}
	}
	return
}

// JinvAt returns the cached inverse Jacobian for element e at node (i,j,k).
func (g *Geometry) JinvAt(el *Discretization, e, i, j, k int) fields.Tensor {
	return g.Jinv[e*el.NP+el.Index3(i, j, k)]
}

// PhysicalGrad contracts a reference-space gradient (see
// Discretization.GradPsi) with the inverse Jacobian at linear node index
// ind: d/dx_m = (d/dxi_n) Jinv[n][m].
func (g *Geometry) PhysicalGrad(ref fields.Vector, ind int) fields.Vector {
	return ref.MulTensor(g.Jinv[ind])
}
