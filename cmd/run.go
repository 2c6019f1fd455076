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

	"github.com/notargets/meshrev/InputParameters"
	"github.com/spf13/cobra"
)

const exampleFile = `
########################################
Title: "Nozzle cleanup"
MeshFile: nozzle.msh
OutputFile: nozzle-fixed.msh
Operation: simplify # collapse, simplify, subdivide, analyze or remove
Tolerance: 1.e-4
MinElementDimension: 3
SpatialIndex: grid # or kdtree
GridCellCapacity: 64
# remove only, elements matching any entry are deleted
# RemoveMaterials: [2]
# RemoveTypes: [Quad, Triangle]
# RemoveZeroContent: true
########################################
`

// RunCmd executes a revision described by a YAML input file
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a mesh revision described by a YAML input file",
	Long: `
Runs one of collapse, simplify, subdivide, analyze or remove with the mesh
files and settings taken from a YAML input file.

meshrev run -I params.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, _ := cmd.Flags().GetString("inputFile")
		rp, err := readParameters(icFile)
		exitOnError(err)
		rp.Print()
		rv, err := revisionFromParameters(rp)
		exitOnError(err)
		out, err := rv.Run()
		exitOnError(err)
		if rv.Operation != "analyze" {
			out.PrintStatistics()
		}
	},
}

func readParameters(icFile string) (rp *InputParameters.RevisionParameters, err error) {
	if len(icFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		return nil, fmt.Errorf("must supply an input parameters file (-I, --inputFile) in YAML format")
	}
	var data []byte
	if data, err = os.ReadFile(icFile); err != nil {
		return
	}
	rp = InputParameters.NewRevisionParameters()
	if err = rp.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", icFile, err)
	}
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputFile", "I", "", "YAML file with the revision parameters like:\n\t- MeshFile\n\t- Operation\n\t- Tolerance")
}
