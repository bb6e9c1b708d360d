// Package turbulence holds the RANS closure models consumed by the solver.
// Models compute pointwise closure quantities from sampled state; the mesh
// differential operators that assemble their transport equations live in
// the surrounding solver.
package turbulence

import (
	"fmt"
	"strings"

	"github.com/cfddev/gorans/fields"
)

type ModelType uint8

const (
	Laminar ModelType = iota
	MixingLength
	KEpsilon
	KOmega
)

func (t ModelType) String() string {
	switch t {
	case Laminar:
		return "Laminar"
	case MixingLength:
		return "MixingLength"
	case KEpsilon:
		return "KEpsilon"
	case KOmega:
		return "KOmega"
	}
	return "Unknown"
}

func ParseModelType(label string) (t ModelType, err error) {
	switch strings.ToLower(label) {
	case "laminar", "none", "":
		t = Laminar
	case "mixinglength", "smagorinsky":
		t = MixingLength
	case "kepsilon", "ke":
		t = KEpsilon
	case "komega", "kw":
		t = KOmega
	default:
		err = fmt.Errorf("unknown turbulence model %q", label)
	}
	return
}

// StrainMeasure selects the velocity-gradient invariant feeding S2: the
// strain rate, the rotation rate, or Kato-Launder's geometric mean of both.
type StrainMeasure uint8

const (
	Smagorinsky StrainMeasure = iota
	Baldwin
	Kato
)

func (s StrainMeasure) String() string {
	switch s {
	case Smagorinsky:
		return "Smagorinsky"
	case Baldwin:
		return "Baldwin"
	case Kato:
		return "Kato"
	}
	return "Unknown"
}

func ParseStrainMeasure(label string) (s StrainMeasure, err error) {
	switch strings.ToLower(label) {
	case "smagorinsky", "":
		s = Smagorinsky
	case "baldwin":
		s = Baldwin
	case "kato":
		s = Kato
	default:
		err = fmt.Errorf("unknown strain measure %q", label)
	}
	return
}

type WallTreatment uint8

const (
	WallNone WallTreatment = iota
	WallStandard
	WallLaunder
)

func (w WallTreatment) String() string {
	switch w {
	case WallNone:
		return "None"
	case WallStandard:
		return "Standard"
	case WallLaunder:
		return "Launder"
	}
	return "Unknown"
}

func ParseWallTreatment(label string) (w WallTreatment, err error) {
	switch strings.ToLower(label) {
	case "none", "":
		w = WallNone
	case "standard":
		w = WallStandard
	case "launder":
		w = WallLaunder
	default:
		err = fmt.Errorf("unknown wall treatment %q", label)
	}
	return
}

// WallFace is one wall-adjacent face as sampled by the caller: the interior
// cell, the wall-normal distance to its centroid, the velocity magnitude
// there, and the wall-normal velocity gradient magnitude.
type WallFace struct {
	Cell  int
	Y     float64
	Umag  float64
	DUmag float64
}

// Closure is the capability set every turbulence model implements. Models
// own their cell fields; callers drive the three capabilities and read the
// results.
type Closure interface {
	Type() ModelType
	// ComputeEddyViscosity updates the eddy viscosity field from the
	// velocity gradient.
	ComputeEddyViscosity(gradU fields.TensorField)
	EddyViscosity() fields.ScalarField
	// ReynoldsStress is the Boussinesq closure
	// R = 2 mu_t dev(sym(gradU)) - (2/3) rho k I.
	ReynoldsStress(gradU fields.TensorField) fields.STensorField
	// TKE is the turbulent kinetic energy field.
	TKE() fields.ScalarField
	// ApplyWallFunction updates the near-wall cell from the law of the wall.
	ApplyWallFunction(w WallFace, law *LawOfWall)
}

type Config struct {
	Model  ModelType
	Strain StrainMeasure
	Wall   WallTreatment
	Rho    float64
	Nu     float64
	Cells  int
	// Lm is the mixing length for the algebraic model.
	Lm float64
}

// New selects and builds a closure model.
func New(cfg Config) (c Closure, err error) {
	if cfg.Cells < 1 {
		return nil, fmt.Errorf("turbulence model needs at least one cell, got %d", cfg.Cells)
	}
	if cfg.Rho <= 0 || cfg.Nu <= 0 {
		return nil, fmt.Errorf("non-physical fluid properties rho=%g nu=%g", cfg.Rho, cfg.Nu)
	}
	switch cfg.Model {
	case Laminar:
		c = newLaminar(cfg)
	case MixingLength:
		c = newMixingLength(cfg)
	case KEpsilon:
		c = NewKEpsilon(cfg)
	case KOmega:
		c = NewKOmega(cfg)
	default:
		err = fmt.Errorf("unknown turbulence model %d", cfg.Model)
	}
	return
}

// ViscousStress is the laminar stress V = 2 rho nu sym(gradU), shared by
// every model.
func ViscousStress(rho, nu float64, gradU fields.TensorField) (V fields.STensorField) {
	V = fields.NewSTensorField(len(gradU))
	for i, g := range gradU {
		V[i] = g.Sym().Scale(2 * rho * nu)
	}
	return
}

// laminarModel carries no closure: zero Reynolds stress, zero TKE.
type laminarModel struct {
	rho, nu float64
	cells   int
}

func newLaminar(cfg Config) *laminarModel {
	return &laminarModel{rho: cfg.Rho, nu: cfg.Nu, cells: cfg.Cells}
}

func (m *laminarModel) Type() ModelType                            { return Laminar }
func (m *laminarModel) ComputeEddyViscosity(fields.TensorField)    {}
func (m *laminarModel) EddyViscosity() fields.ScalarField          { return fields.NewScalarField(m.cells) }
func (m *laminarModel) TKE() fields.ScalarField                    { return fields.NewScalarField(m.cells) }
func (m *laminarModel) ApplyWallFunction(w WallFace, l *LawOfWall) {}

func (m *laminarModel) ReynoldsStress(gradU fields.TensorField) fields.STensorField {
	return fields.NewSTensorField(len(gradU))
}
