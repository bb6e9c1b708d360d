package DG

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfddev/gorans/fields"
)

func TestExpandCell(t *testing.T) {
	// Two elements at order (2,2,2): one value per element at the low
	// addresses becomes NP copies per element.
	el, err := NewDiscretization(2, 2, 2, GaussLobatto)
	require.NoError(t, err)
	require.Equal(t, 8, el.NP)

	f := make(fields.ScalarField, 2*el.NP)
	f[0], f[1] = 3.5, -1.25
	ExpandCell(el, f)
	for ind := 0; ind < el.NP; ind++ {
		assert.Equal(t, 3.5, f[ind])
		assert.Equal(t, -1.25, f[el.NP+ind])
	}
}

func TestExpandIdempotent(t *testing.T) {
	// Re-expanding reads only the representative value per element, so a
	// second pass changes nothing.
	el, err := NewDiscretization(3, 2, 2, GaussLobatto)
	require.NoError(t, err)

	f := make(fields.ScalarField, 3*el.NP)
	f[0], f[1], f[2] = 1, 2, 3
	ExpandCell(el, f)
	want := append(fields.ScalarField{}, f...)
	ExpandCell(el, f)
	assert.Equal(t, want, f)
}

func TestExpandSingleNodeNoOp(t *testing.T) {
	el, err := NewDiscretization(1, 1, 1, GaussLobatto)
	require.NoError(t, err)
	require.Equal(t, 1, el.NP)
	f := fields.ScalarField{4, 5, 6}
	ExpandCell(el, f)
	assert.Equal(t, fields.ScalarField{4, 5, 6}, f)
}

func TestExpandFaceVectors(t *testing.T) {
	el, err := NewDiscretization(2, 3, 2, GaussLobatto)
	require.NoError(t, err)
	require.Equal(t, 6, el.NPF)

	v1 := fields.Vector{1, 0, 0}
	v2 := fields.Vector{0, 2, 0}
	f := make(fields.VectorField, 2*el.NPF)
	f[0], f[1] = v1, v2
	ExpandFace(el, f)
	for ind := 0; ind < el.NPF; ind++ {
		assert.Equal(t, v1, f[ind])
		assert.Equal(t, v2, f[el.NPF+ind])
	}
}

func TestExpandBadBlock(t *testing.T) {
	assert.Panics(t, func() {
		Expand(make([]float64, 7), 2)
	})
}
