/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/cfddev/gorans/DG"
	"github.com/cfddev/gorans/InputParameters"
	"github.com/cfddev/gorans/mesh"
	"github.com/cfddev/gorans/turbulence"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the discretization, geometry and closure for a YAML case",
	Long: `
Reads a YAML case file, constructs the basis and quadrature tables, meshes
the case box, computes the per-node inverse Jacobians and instantiates the
selected turbulence closure,

gorans run -F case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		casefile, _ := cmd.Flags().GetString("caseFile")
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start().Stop()
		}
		if err := runCase(casefile); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("caseFile", "F", "case.yaml", "YAML case file")
	RunCmd.Flags().Bool("profile", false, "write a CPU profile of the build")
}

func runCase(casefile string) (err error) {
	data, err := os.ReadFile(casefile)
	if err != nil {
		return fmt.Errorf("unable to read case file: %s", err)
	}
	cp := &InputParameters.CaseParameters{
		NPX: 2, NPY: 2, NPZ: 2,
		Rho: 1, Nu: 1.e-5,
		Mesh: InputParameters.MeshExtent{
			Min:   [3]float64{-1, -1, -1},
			Max:   [3]float64{1, 1, 1},
			Cells: [3]int{1, 1, 1},
		},
	}
	if err = cp.Parse(data); err != nil {
		return fmt.Errorf("unable to parse case file: %s", err)
	}
	cp.Print()

	rule, err := DG.ParseQuadratureRule(cp.Quadrature)
	if err != nil {
		return
	}
	el, err := DG.NewDiscretization(cp.NPX, cp.NPY, cp.NPZ, rule)
	if err != nil {
		return
	}
	el.Print()

	hm, err := mesh.NewBoxMesh(cp.Mesh.Min, cp.Mesh.Max, cp.Mesh.Cells[0], cp.Mesh.Cells[1], cp.Mesh.Cells[2])
	if err != nil {
		return
	}
	geom, err := el.InitGeom(hm.K, hm.Nodes(el))
	if err != nil {
		return
	}
	fmt.Printf("[%d]\t\t\t= Elements\n", hm.K)
	fmt.Printf("[%d]\t\t\t= Boundary Faces\n", hm.BoundaryFaceCount())
	fmt.Printf("[%d]\t\t\t= Geometry Nodes\n", len(geom.Jinv))

	model, err := newClosure(cp, hm.K*el.NP)
	if err != nil {
		return
	}
	fmt.Printf("[%s]\t\t= Closure\n", model.Type())
	return
}

func newClosure(cp *InputParameters.CaseParameters, cells int) (c turbulence.Closure, err error) {
	mt, err := turbulence.ParseModelType(cp.Turbulence)
	if err != nil {
		return
	}
	sm, err := turbulence.ParseStrainMeasure(cp.StrainMeasure)
	if err != nil {
		return
	}
	wt, err := turbulence.ParseWallTreatment(cp.WallTreatment)
	if err != nil {
		return
	}
	return turbulence.New(turbulence.Config{
		Model:  mt,
		Strain: sm,
		Wall:   wt,
		Rho:    cp.Rho,
		Nu:     cp.Nu,
		Cells:  cells,
		Lm:     cp.MixingLength,
	})
}
