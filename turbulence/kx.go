package turbulence

import (
	"math"

	"github.com/cfddev/gorans/fields"
)

// kxModel is the shared core of the two-equation closures: turbulent
// kinetic energy k plus one rate variable x (dissipation or specific
// dissipation). The concrete models plug in their eddy viscosity formula
// and their wall value of x.
type kxModel struct {
	evBase

	Cmu    float64
	SigmaK float64
	SigmaX float64
	C1x    float64
	C2x    float64

	// Under-relaxation factors for the transport solves driven by the
	// surrounding solver.
	KUR, XUR float64

	K, X, Pk fields.ScalarField

	calcEddyMu func()
	calcX      func(ustar, kappa, y float64) float64
}

func newKX(cfg Config) kxModel {
	return kxModel{
		evBase: newEVBase(cfg),
		KUR:    0.7,
		XUR:    0.7,
		K:      fields.NewScalarField(cfg.Cells),
		X:      fields.NewScalarField(cfg.Cells),
		Pk:     fields.NewScalarField(cfg.Cells),
	}
}

func (m *kxModel) TKE() fields.ScalarField        { return m.K }
func (m *kxModel) Production() fields.ScalarField { return m.Pk }

func (m *kxModel) ComputeEddyViscosity(gradU fields.TensorField) {
	m.calcEddyMu()
	for c, g := range gradU {
		m.Pk[c] = m.S2(g) * m.eddyMu[c]
	}
}

func (m *kxModel) ReynoldsStress(gradU fields.TensorField) fields.STensorField {
	return m.reynoldsStress(gradU, m.K)
}

func (m *kxModel) ApplyWallFunction(w WallFace, law *LawOfWall) {
	var (
		c     = w.Cell
		ustar float64
	)
	switch m.wall {
	case WallStandard:
		ustar = law.Ustar(m.nu, w.Umag, w.Y)
		m.K[c] = ustar * ustar / math.Sqrt(m.Cmu)
	case WallLaunder:
		ustar = math.Pow(m.Cmu, 0.25) * math.Sqrt(m.K[c])
	default:
		return
	}
	m.X[c] = m.calcX(ustar, law.Kappa, w.Y)

	yp := ustar * w.Y / m.nu
	up := law.Up(ustar, m.nu, yp)
	m.eddyMu[c] = m.rho * m.nu * (yp/up - 1)

	if m.wall == WallLaunder {
		// Equilibrium production from the measured gradient against the
		// log-law gradient.
		m.Pk[c] = w.DUmag * (ustar / (law.Kappa * w.Y)) * m.eddyMu[c]
	}
}
