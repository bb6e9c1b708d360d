package turbulence

import "math"

// KOmegaModel is Wilcox's k-omega closure: mu_t = rho k / omega. Cmu plays
// the role of beta-star.
type KOmegaModel struct {
	kxModel
}

func NewKOmega(cfg Config) *KOmegaModel {
	if cfg.Wall == WallNone {
		cfg.Wall = WallLaunder
	}
	m := &KOmegaModel{kxModel: newKX(cfg)}
	m.Cmu = 0.09
	m.SigmaK = 2.0
	m.SigmaX = 2.0
	m.C1x = 5.0 / 9.0
	m.C2x = 0.075
	m.calcEddyMu = func() {
		for c := range m.eddyMu {
			if m.X[c] > 0 {
				m.eddyMu[c] = m.rho * m.K[c] / m.X[c]
			} else {
				m.eddyMu[c] = 0
			}
		}
	}
	// Equilibrium wall value omega = ustar / (sqrt(Cmu) kappa y).
	m.calcX = func(ustar, kappa, y float64) float64 {
		return ustar / (math.Sqrt(m.Cmu) * kappa * y)
	}
	return m
}

func (m *KOmegaModel) Type() ModelType { return KOmega }
