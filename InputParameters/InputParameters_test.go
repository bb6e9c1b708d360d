package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseParametersParse(t *testing.T) {
	var doc = `
Title: Channel
NPX: 4
NPY: 4
NPZ: 2
Quadrature: GaussLobatto
Rho: 1.2
Nu: 1.5e-5
Turbulence: KEpsilon
StrainMeasure: Kato
WallTreatment: Launder
Mesh:
  Min: [0, 0, 0]
  Max: [6.28, 2, 3.14]
  Cells: [8, 4, 4]
`
	cp := &CaseParameters{}
	require.NoError(t, cp.Parse([]byte(doc)))
	assert.Equal(t, "Channel", cp.Title)
	assert.Equal(t, 4, cp.NPX)
	assert.Equal(t, 4, cp.NPY)
	assert.Equal(t, 2, cp.NPZ)
	assert.Equal(t, "GaussLobatto", cp.Quadrature)
	assert.Equal(t, 1.2, cp.Rho)
	assert.Equal(t, 1.5e-5, cp.Nu)
	assert.Equal(t, "KEpsilon", cp.Turbulence)
	assert.Equal(t, [3]int{8, 4, 4}, cp.Mesh.Cells)
	assert.Equal(t, 6.28, cp.Mesh.Max[0])
	cp.Print()
}

func TestCaseParametersParseBad(t *testing.T) {
	cp := &CaseParameters{}
	assert.Error(t, cp.Parse([]byte("NPX: [not an int]")))
}
