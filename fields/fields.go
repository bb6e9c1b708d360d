// Package fields holds the value types and flat per-node storage the
// discretization reads and writes. Mesh differential operators (grad, div,
// lap) live in the surrounding solver; only pointwise algebra is here.
package fields

// Vector is a single 3-component value.
type Vector [3]float64

// Tensor is a general 3x3 value, row-major: T[i][j] is row i, column j.
type Tensor [3][3]float64

// STensor is a symmetric 3x3 value stored as XX, YY, ZZ, XY, YZ, XZ.
type STensor [6]float64

const (
	XX = iota
	YY
	ZZ
	XY
	YZ
	XZ
)

// I is the identity tensor.
var I = Tensor{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func (v Vector) Add(a Vector) Vector {
	return Vector{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vector) Sub(a Vector) Vector {
	return Vector{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{s * v[0], s * v[1], s * v[2]}
}

func (v Vector) Dot(a Vector) float64 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vector) Mag() float64 {
	return sqrt(v.Dot(v))
}

// MulTensor contracts v with t from the left: (v·t)[j] = v[i] t[i][j].
func (v Vector) MulTensor(t Tensor) (r Vector) {
	for j := 0; j < 3; j++ {
		r[j] = v[0]*t[0][j] + v[1]*t[1][j] + v[2]*t[2][j]
	}
	return
}

func (t Tensor) Add(a Tensor) (r Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] + a[i][j]
		}
	}
	return
}

func (t Tensor) Scale(s float64) (r Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = s * t[i][j]
		}
	}
	return
}

func (t Tensor) Trans() (r Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[j][i]
		}
	}
	return
}

func (t Tensor) Trace() float64 {
	return t[0][0] + t[1][1] + t[2][2]
}

// Sym returns the symmetric part (t + tᵀ)/2.
func (t Tensor) Sym() STensor {
	return STensor{
		t[0][0],
		t[1][1],
		t[2][2],
		0.5 * (t[0][1] + t[1][0]),
		0.5 * (t[1][2] + t[2][1]),
		0.5 * (t[0][2] + t[2][0]),
	}
}

// Skw returns the antisymmetric part (t - tᵀ)/2.
func (t Tensor) Skw() (r Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = 0.5 * (t[i][j] - t[j][i])
		}
	}
	return
}

// Dev subtracts factor/3 of the trace from the diagonal.
func (t Tensor) Dev(factor float64) (r Tensor) {
	r = t
	d := factor * t.Trace() / 3
	r[0][0] -= d
	r[1][1] -= d
	r[2][2] -= d
	return
}

// Dot is the double-dot contraction t:a.
func (t Tensor) Dot(a Tensor) (s float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += t[i][j] * a[i][j]
		}
	}
	return
}

func (t Tensor) Det() float64 {
	return t[0][0]*(t[1][1]*t[2][2]-t[1][2]*t[2][1]) -
		t[0][1]*(t[1][0]*t[2][2]-t[1][2]*t[2][0]) +
		t[0][2]*(t[1][0]*t[2][1]-t[1][1]*t[2][0])
}

// Inverse returns the adjugate divided by det. The caller checks det for
// validity before relying on the result.
func (t Tensor) Inverse() (r Tensor, det float64) {
	det = t.Det()
	if det == 0 {
		return
	}
	d := 1 / det
	r[0][0] = d * (t[1][1]*t[2][2] - t[1][2]*t[2][1])
	r[0][1] = d * (t[0][2]*t[2][1] - t[0][1]*t[2][2])
	r[0][2] = d * (t[0][1]*t[1][2] - t[0][2]*t[1][1])
	r[1][0] = d * (t[1][2]*t[2][0] - t[1][0]*t[2][2])
	r[1][1] = d * (t[0][0]*t[2][2] - t[0][2]*t[2][0])
	r[1][2] = d * (t[0][2]*t[1][0] - t[0][0]*t[1][2])
	r[2][0] = d * (t[1][0]*t[2][1] - t[1][1]*t[2][0])
	r[2][1] = d * (t[0][1]*t[2][0] - t[0][0]*t[2][1])
	r[2][2] = d * (t[0][0]*t[1][1] - t[0][1]*t[1][0])
	return
}

func (s STensor) Add(a STensor) (r STensor) {
	for i := range s {
		r[i] = s[i] + a[i]
	}
	return
}

func (s STensor) Scale(f float64) (r STensor) {
	for i := range s {
		r[i] = f * s[i]
	}
	return
}

func (s STensor) Trace() float64 {
	return s[XX] + s[YY] + s[ZZ]
}

func (s STensor) Dev(factor float64) (r STensor) {
	r = s
	d := factor * s.Trace() / 3
	r[XX] -= d
	r[YY] -= d
	r[ZZ] -= d
	return
}

// Dot is the double-dot contraction s:a; off-diagonal entries count twice.
func (s STensor) Dot(a STensor) float64 {
	return s[XX]*a[XX] + s[YY]*a[YY] + s[ZZ]*a[ZZ] +
		2*(s[XY]*a[XY]+s[YZ]*a[YZ]+s[XZ]*a[XZ])
}

func (s STensor) Full() (t Tensor) {
	t[0][0], t[1][1], t[2][2] = s[XX], s[YY], s[ZZ]
	t[0][1], t[1][0] = s[XY], s[XY]
	t[1][2], t[2][1] = s[YZ], s[YZ]
	t[0][2], t[2][0] = s[XZ], s[XZ]
	return
}
