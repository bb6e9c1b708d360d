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

	"github.com/spf13/cobra"

	"github.com/cfddev/gorans/DG"
)

// BasisCmd represents the basis command
var BasisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Print quadrature nodes, weights and basis tables for one direction",
	Long: `
Constructs the one-dimensional quadrature rule and the cardinal basis and
derivative tables for a requested order, and prints them,

gorans basis -n 5 --rule GaussLobatto`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("n")
		label, _ := cmd.Flags().GetString("rule")
		rule, err := DG.ParseQuadratureRule(label)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		el, err := DG.NewDiscretization(n, n, n, rule)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		el.Print()
		fmt.Printf("psi = \n%v\n", el.Psi[0])
		fmt.Printf("dpsi = \n%v\n", el.Dpsi[0])
	},
}

func init() {
	rootCmd.AddCommand(BasisCmd)
	BasisCmd.Flags().IntP("n", "n", 4, "polynomial order (node count)")
	BasisCmd.Flags().String("rule", "GaussLobatto", "quadrature rule: Gauss or GaussLobatto")
}
