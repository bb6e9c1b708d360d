package turbulence

import (
	"math"

	"github.com/cfddev/gorans/fields"
)

// evBase carries the Boussinesq machinery shared by every eddy-viscosity
// closure: the eddy viscosity field, the strain measure feeding S2, and the
// Reynolds stress assembly.
type evBase struct {
	rho, nu float64
	strain  StrainMeasure
	wall    WallTreatment
	eddyMu  fields.ScalarField
}

func newEVBase(cfg Config) evBase {
	return evBase{
		rho:    cfg.Rho,
		nu:     cfg.Nu,
		strain: cfg.Strain,
		wall:   cfg.Wall,
		eddyMu: fields.NewScalarField(cfg.Cells),
	}
}

func (m *evBase) EddyViscosity() fields.ScalarField { return m.eddyMu }

// S2 is twice the selected strain invariant of the velocity gradient.
func (m *evBase) S2(g fields.Tensor) float64 {
	switch m.strain {
	case Baldwin:
		O := g.Skw()
		return 2 * O.Dot(O)
	case Kato:
		S := g.Sym()
		O := g.Skw()
		return 2 * math.Sqrt(S.Dot(S)*O.Dot(O))
	default:
		S := g.Sym()
		return 2 * S.Dot(S)
	}
}

func (m *evBase) reynoldsStress(gradU fields.TensorField, k fields.ScalarField) (R fields.STensorField) {
	R = fields.NewSTensorField(len(gradU))
	iso := fields.STensor{1, 1, 1, 0, 0, 0}
	for c, g := range gradU {
		R[c] = g.Sym().Dev(1).Scale(2 * m.eddyMu[c]).
			Add(iso.Scale(-2 * m.rho * k[c] / 3))
	}
	return
}
