package turbulence

import "math"

// LawOfWall is the two-layer wall velocity profile: the viscous sublayer
// u+ = y+ matched to the log layer u+ = ln(E y+)/kappa at YPLam.
type LawOfWall struct {
	Kappa, E float64
	YPLam    float64
}

func NewLawOfWall() (l LawOfWall) {
	l = LawOfWall{Kappa: 0.41, E: 9.793}
	// Fixed point of yp = ln(E yp)/kappa, the sublayer/log-layer crossover.
	yp := 11.0
	for i := 0; i < 20; i++ {
		yp = math.Log(l.E*yp) / l.Kappa
	}
	l.YPLam = yp
	return
}

// Up returns u+ for a given y+.
func (l *LawOfWall) Up(ustar, nu, yp float64) float64 {
	if yp > l.YPLam {
		return math.Log(l.E*yp) / l.Kappa
	}
	return yp
}

// Ustar inverts the wall profile for the friction velocity given the
// velocity magnitude u at wall distance y.
func (l *LawOfWall) Ustar(nu, u, y float64) (ustar float64) {
	// Sublayer estimate from u+ = y+.
	ustar = math.Sqrt(u * nu / y)
	if ustar*y/nu <= l.YPLam {
		return
	}
	// Log layer: Newton on f(us) = us ln(E y us / nu) / kappa - u.
	for i := 0; i < 20; i++ {
		lg := math.Log(l.E * y * ustar / nu)
		f := ustar*lg/l.Kappa - u
		df := (lg + 1) / l.Kappa
		dus := -f / df
		ustar += dus
		if math.Abs(dus) <= 1.e-12*ustar {
			break
		}
	}
	return
}
