package DG

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfddev/gorans/fields"
)

// referenceCubeNodes places nodal positions for a single axis-aligned box
// [-sx,sx]x[-sy,sy]x[-sz,sz] directly from the reference nodes.
func referenceCubeNodes(el *Discretization, sx, sy, sz float64) (X fields.VectorField) {
	X = fields.NewVectorField(el.NP)
	for i := 0; i < el.NPX; i++ {
		for j := 0; j < el.NPY; j++ {
			for k := 0; k < el.NPZ; k++ {
				X[el.Index3(i, j, k)] = fields.Vector{
					sx * el.Xgl[0].AtVec(i),
					sy * el.Xgl[1].AtVec(j),
					sz * el.Xgl[2].AtVec(k),
				}
			}
		}
	}
	return
}

func TestJinvIdentityOnUnitCube(t *testing.T) {
	// Side length 2 centered at the origin: reference and physical
	// coordinates coincide, Jinv is the identity at every node.
	el, err := NewDiscretization(2, 2, 2, GaussLobatto)
	require.NoError(t, err)
	geom, err := el.InitGeom(1, referenceCubeNodes(el, 1, 1, 1))
	require.NoError(t, err)
	for ind := 0; ind < el.NP; ind++ {
		assert.InDelta(t, 1, geom.Jdet[ind], 1.e-13)
		for m := 0; m < 3; m++ {
			for n := 0; n < 3; n++ {
				assert.InDeltaf(t, fields.I[m][n], geom.Jinv[ind][m][n], 1.e-13,
					"node %d entry (%d,%d)", ind, m, n)
			}
		}
	}
}

func TestJinvStretchedBox(t *testing.T) {
	el, err := NewDiscretization(3, 3, 3, GaussLobatto)
	require.NoError(t, err)
	geom, err := el.InitGeom(1, referenceCubeNodes(el, 2, 0.5, 4))
	require.NoError(t, err)
	want := fields.Tensor{{0.5, 0, 0}, {0, 2, 0}, {0, 0, 0.25}}
	for i := 0; i < el.NPX; i++ {
		for j := 0; j < el.NPY; j++ {
			for k := 0; k < el.NPZ; k++ {
				assert.InDelta(t, 2*0.5*4, geom.Jdet[el.Index3(i, j, k)], 1.e-12)
				Jinv := geom.JinvAt(el, 0, i, j, k)
				for m := 0; m < 3; m++ {
					for n := 0; n < 3; n++ {
						assert.InDelta(t, want[m][n], Jinv[m][n], 1.e-12)
					}
				}
			}
		}
	}
	{
		// Physical gradient of f(x,y,z) = x on the stretched box is (1,0,0):
		// the reference gradient (2,0,0) contracted with Jinv.
		g := geom.PhysicalGrad(fields.Vector{2, 0, 0}, 0)
		assert.InDelta(t, 1, g[0], 1.e-13)
		assert.InDelta(t, 0, g[1], 1.e-13)
		assert.InDelta(t, 0, g[2], 1.e-13)
	}
}

func TestInvertedElementFails(t *testing.T) {
	el, err := NewDiscretization(2, 2, 2, GaussLobatto)
	require.NoError(t, err)
	// Mirror the x direction: negative determinant
	X := referenceCubeNodes(el, -1, 1, 1)
	_, err = el.InitGeom(1, X)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 0")
	assert.Contains(t, err.Error(), "determinant")
}

func TestGeomSizeMismatch(t *testing.T) {
	el, err := NewDiscretization(2, 2, 2, GaussLobatto)
	require.NoError(t, err)
	_, err = el.InitGeom(2, referenceCubeNodes(el, 1, 1, 1))
	assert.Error(t, err)
}
