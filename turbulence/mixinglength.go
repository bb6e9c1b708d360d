package turbulence

import (
	"math"

	"github.com/cfddev/gorans/fields"
)

// mixingLengthModel is the algebraic closure mu_t = rho lm^2 sqrt(S2): no
// transported quantities, eddy viscosity straight from the local gradient.
type mixingLengthModel struct {
	evBase
	lm    float64
	cells int
}

func newMixingLength(cfg Config) *mixingLengthModel {
	lm := cfg.Lm
	if lm <= 0 {
		lm = 0.1
	}
	return &mixingLengthModel{
		evBase: newEVBase(cfg),
		lm:     lm,
		cells:  cfg.Cells,
	}
}

func (m *mixingLengthModel) Type() ModelType { return MixingLength }

func (m *mixingLengthModel) ComputeEddyViscosity(gradU fields.TensorField) {
	for c, g := range gradU {
		m.eddyMu[c] = m.rho * m.lm * m.lm * math.Sqrt(m.S2(g))
	}
}

func (m *mixingLengthModel) TKE() fields.ScalarField {
	return fields.NewScalarField(m.cells)
}

func (m *mixingLengthModel) ReynoldsStress(gradU fields.TensorField) fields.STensorField {
	return m.reynoldsStress(gradU, m.TKE())
}

func (m *mixingLengthModel) ApplyWallFunction(w WallFace, law *LawOfWall) {
	ustar := law.Ustar(m.nu, w.Umag, w.Y)
	yp := ustar * w.Y / m.nu
	up := law.Up(ustar, m.nu, yp)
	m.eddyMu[w.Cell] = m.rho * m.nu * (yp/up - 1)
}
