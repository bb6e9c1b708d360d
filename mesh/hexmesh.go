// Package mesh provides the minimal structured hexahedral meshes the
// discretization's geometry pass and tests consume. General mesh I/O and
// partitioning live outside this repository.
package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/cfddev/gorans/DG"
	"github.com/cfddev/gorans/fields"
)

const NFaces = 6

// Local face numbering: -z, +z, -y, +x, +y, -x. Each row lists the four
// corner vertices of the face in the standard 8-vertex hex ordering.
var faceVerts = [NFaces][4]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{0, 3, 7, 4},
}

// Corner signs of the reference cube [-1,1]^3 in the same ordering.
var cornerSigns = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

type HexMesh struct {
	K, Nv      int
	VX, VY, VZ []float64 // vertex coordinates
	EToV       [][8]int
	EToE, EToF [][NFaces]int // boundary faces connect back to themselves
}

// NewBoxMesh meshes the axis-aligned box [min,max] with nx x ny x nz
// equal hexahedra and builds the face connectivity.
func NewBoxMesh(min, max [3]float64, nx, ny, nz int) (m *HexMesh, err error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("invalid cell counts (%d,%d,%d), must be >= 1", nx, ny, nz)
	}
	for d := 0; d < 3; d++ {
		if max[d] <= min[d] {
			return nil, fmt.Errorf("degenerate box extent in direction %d: [%g,%g]", d, min[d], max[d])
		}
	}
	m = &HexMesh{
		K:  nx * ny * nz,
		Nv: (nx + 1) * (ny + 1) * (nz + 1),
	}
	m.VX = make([]float64, m.Nv)
	m.VY = make([]float64, m.Nv)
	m.VZ = make([]float64, m.Nv)
	vid := func(i, j, k int) int { return (k*(ny+1)+j)*(nx+1) + i }
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				v := vid(i, j, k)
				m.VX[v] = min[0] + (max[0]-min[0])*float64(i)/float64(nx)
				m.VY[v] = min[1] + (max[1]-min[1])*float64(j)/float64(ny)
				m.VZ[v] = min[2] + (max[2]-min[2])*float64(k)/float64(nz)
			}
		}
	}
	m.EToV = make([][8]int, m.K)
	var e int
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				m.EToV[e] = [8]int{
					vid(i, j, k), vid(i+1, j, k), vid(i+1, j+1, k), vid(i, j+1, k),
					vid(i, j, k+1), vid(i+1, j, k+1), vid(i+1, j+1, k+1), vid(i, j+1, k+1),
				}
				e++
			}
		}
	}
	m.connect()
	return
}

// connect pairs element faces through the sparse product FToV * FToV^T: two
// distinct faces sharing all four vertices are the two sides of one
// interior face.
func (m *HexMesh) connect() {
	var (
		totalFaces = NFaces * m.K
	)
	FToVTmp := sparse.NewDOK(totalFaces, m.Nv)
	var sk int
	for k := 0; k < m.K; k++ {
		for face := 0; face < NFaces; face++ {
			for _, c := range faceVerts[face] {
				FToVTmp.Set(sk, m.EToV[k][c], 1)
			}
			sk++
		}
	}
	FToF := sparse.NewCSR(totalFaces, totalFaces, nil, nil, nil)
	FToV := FToVTmp.ToCSR()
	FToF.Mul(FToV, FToV.T())

	m.EToE = make([][NFaces]int, m.K)
	m.EToF = make([][NFaces]int, m.K)
	for k := 0; k < m.K; k++ {
		for face := 0; face < NFaces; face++ {
			m.EToE[k][face] = k
			m.EToF[k][face] = face
		}
	}
	FToF.DoNonZero(func(gf1, gf2 int, v float64) {
		if gf1 == gf2 || v != 4 {
			return
		}
		k1, f1 := gf1/NFaces, gf1%NFaces
		m.EToE[k1][f1] = gf2 / NFaces
		m.EToF[k1][f1] = gf2 % NFaces
	})
}

// BoundaryFaceCount counts faces left connected to themselves.
func (m *HexMesh) BoundaryFaceCount() (nb int) {
	for k := 0; k < m.K; k++ {
		for face := 0; face < NFaces; face++ {
			if m.EToE[k][face] == k && m.EToF[k][face] == face {
				nb++
			}
		}
	}
	return
}

// Nodes places the solution nodes of every element by mapping the
// tensor-product reference nodes through the trilinear corner map. The
// result feeds Discretization.InitGeom.
func (m *HexMesh) Nodes(el *DG.Discretization) (X fields.VectorField) {
	X = fields.NewVectorField(m.K * el.NP)
	for e := 0; e < m.K; e++ {
		base := e * el.NP
		for i := 0; i < el.NPX; i++ {
			for j := 0; j < el.NPY; j++ {
				for k := 0; k < el.NPZ; k++ {
					r := el.Xgl[0].AtVec(i)
					s := el.Xgl[1].AtVec(j)
					t := el.Xgl[2].AtVec(k)
					var p fields.Vector
					for a := 0; a < 8; a++ {
						sg := cornerSigns[a]
						na := (1 + sg[0]*r) * (1 + sg[1]*s) * (1 + sg[2]*t) / 8
						v := m.EToV[e][a]
						p[0] += na * m.VX[v]
						p[1] += na * m.VY[v]
						p[2] += na * m.VZ[v]
					}
					X[base+el.Index3(i, j, k)] = p
				}
			}
		}
	}
	return
}
