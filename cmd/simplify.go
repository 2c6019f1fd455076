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
	"github.com/spf13/viper"
)

// SimplifyCmd collapses nodes and then repairs the elements that lost nodes
var SimplifyCmd = newRevisionCommand("simplify",
	"Collapse nodes, reduce degenerate elements and subdivide non-planar elements")

func init() {
	rootCmd.AddCommand(SimplifyCmd)
	SimplifyCmd.Flags().IntP("min-dim", "d", 1, "elements of lower dimension than this are dropped: 1, 2 or 3")
	if err := viper.BindPFlag("min-dim", SimplifyCmd.Flags().Lookup("min-dim")); err != nil {
		panic(err)
	}
	SimplifyCmd.Example = `  meshrev simplify -F nozzle.msh -o nozzle-fixed.msh --tolerance 1e-4 --min-dim 3`
}
