package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// CaseParameters are read from the YAML case file.
type CaseParameters struct {
	Title         string     `yaml:"Title"`
	NPX           int        `yaml:"NPX"`
	NPY           int        `yaml:"NPY"`
	NPZ           int        `yaml:"NPZ"`
	Quadrature    string     `yaml:"Quadrature"`
	Rho           float64    `yaml:"Rho"`
	Nu            float64    `yaml:"Nu"`
	Turbulence    string     `yaml:"Turbulence"`
	StrainMeasure string     `yaml:"StrainMeasure"`
	WallTreatment string     `yaml:"WallTreatment"`
	MixingLength  float64    `yaml:"MixingLength"`
	Mesh          MeshExtent `yaml:"Mesh"`
}

type MeshExtent struct {
	Min   [3]float64 `yaml:"Min"`
	Max   [3]float64 `yaml:"Max"`
	Cells [3]int     `yaml:"Cells"`
}

func (cp *CaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%d %d %d]\t\t= Polynomial Order (NPX NPY NPZ)\n", cp.NPX, cp.NPY, cp.NPZ)
	fmt.Printf("[%s]\t\t= Quadrature\n", cp.Quadrature)
	fmt.Printf("%8.5f\t\t= Rho\n", cp.Rho)
	fmt.Printf("%8.5g\t\t= Nu\n", cp.Nu)
	fmt.Printf("[%s]\t\t= Turbulence Model\n", cp.Turbulence)
	fmt.Printf("[%s]\t\t= Strain Measure\n", cp.StrainMeasure)
	fmt.Printf("[%s]\t\t= Wall Treatment\n", cp.WallTreatment)
	fmt.Printf("%v -> %v / %v\t= Mesh Extent / Cells\n", cp.Mesh.Min, cp.Mesh.Max, cp.Mesh.Cells)
}
