package turbulence

// KEpsilonModel is the standard k-epsilon closure with launder-spalding
// coefficients: mu_t = rho Cmu k^2 / epsilon.
type KEpsilonModel struct {
	kxModel
}

func NewKEpsilon(cfg Config) *KEpsilonModel {
	if cfg.Wall == WallNone {
		cfg.Wall = WallLaunder
	}
	m := &KEpsilonModel{kxModel: newKX(cfg)}
	m.Cmu = 0.09
	m.SigmaK = 1.0
	m.SigmaX = 1.314
	m.C1x = 1.44
	m.C2x = 1.92
	m.calcEddyMu = func() {
		for c := range m.eddyMu {
			if m.X[c] > 0 {
				m.eddyMu[c] = m.rho * m.Cmu * m.K[c] * m.K[c] / m.X[c]
			} else {
				m.eddyMu[c] = 0
			}
		}
	}
	// Equilibrium wall dissipation epsilon = ustar^3 / (kappa y).
	m.calcX = func(ustar, kappa, y float64) float64 {
		return ustar * ustar * ustar / (kappa * y)
	}
	return m
}

func (m *KEpsilonModel) Type() ModelType { return KEpsilon }
