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
	"github.com/spf13/cobra"
)

// AnalyzeCmd prints the mesh statistics, the element validation summary and
// the number of nodes that a collapse would merge
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report mesh statistics, element defects and collapsible nodes",
	Long: `
Reports node and element counts, element types, unique and degenerate edges,
element content, the bounding box, the count of elements with each defect and
the number of nodes within the tolerance of an earlier node.

meshrev analyze -F input.msh --tolerance 1e-4`,
	Run: func(cmd *cobra.Command, args []string) {
		rv, err := revisionFromFlags(cmd, "analyze")
		exitOnError(err)
		_, err = rv.Run()
		exitOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(AnalyzeCmd)
	AnalyzeCmd.Flags().StringP("meshFile", "F", "", "mesh file to read in .msh, .neu or .su2 format")
}
