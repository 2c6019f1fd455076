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
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/notargets/meshrev/InputParameters"
	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/mesh/readers"
	"github.com/notargets/meshrev/mesh/revision"
	"github.com/notargets/meshrev/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultTolerance    = InputParameters.DefaultTolerance
	defaultCellCapacity = InputParameters.DefaultGridCellCapacity
)

// Revision holds everything needed for one revision run
type Revision struct {
	Operation    string
	MeshFile     string
	OutputFile   string
	MeshName     string
	Tolerance    float64
	MinDim       int
	Index        revision.IndexKind
	CellCapacity int
	Logger       *log.Logger

	// elements selected by the remove operation
	Materials   []int
	Types       []string
	ZeroContent bool
	AroundNodes []int
}

// revisionFromFlags gathers the command flags, with viper supplying the
// config file and environment values for the shared settings
func revisionFromFlags(cmd *cobra.Command, op string) (rv *Revision, err error) {
	rv = &Revision{
		Operation:    op,
		Tolerance:    viper.GetFloat64("tolerance"),
		MinDim:       1,
		CellCapacity: viper.GetInt("cell-capacity"),
	}
	if rv.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
		return
	}
	if len(rv.MeshFile) == 0 {
		err = fmt.Errorf("must supply a mesh file (-F, --meshFile) in .msh, .neu or .su2 format")
		return
	}
	if f := cmd.Flags().Lookup("output"); f != nil {
		rv.OutputFile = f.Value.String()
	}
	if f := cmd.Flags().Lookup("name"); f != nil {
		rv.MeshName = f.Value.String()
	}
	switch op {
	case "simplify":
		rv.MinDim = viper.GetInt("min-dim")
	case "remove":
		fl := cmd.Flags()
		if rv.Materials, err = fl.GetIntSlice("material"); err != nil {
			return
		}
		if rv.Types, err = fl.GetStringSlice("type"); err != nil {
			return
		}
		if rv.ZeroContent, err = fl.GetBool("zero-content"); err != nil {
			return
		}
		if rv.AroundNodes, err = fl.GetIntSlice("node"); err != nil {
			return
		}
	}
	if rv.Index, err = revision.ParseIndexKind(viper.GetString("index")); err != nil {
		return
	}
	if viper.GetBool("verbose") {
		rv.Logger = log.New(os.Stderr, "meshrev: ", log.LstdFlags)
	}
	return
}

// revisionFromParameters converts a YAML run description
func revisionFromParameters(rp *InputParameters.RevisionParameters) (rv *Revision, err error) {
	rv = &Revision{
		Operation:    rp.Operation,
		MeshFile:     rp.MeshFile,
		OutputFile:   rp.OutputFile,
		MeshName:     rp.MeshName,
		Tolerance:    rp.Tolerance,
		MinDim:       rp.MinElementDimension,
		CellCapacity: rp.GridCellCapacity,
		Materials:    rp.RemoveMaterials,
		Types:        rp.RemoveTypes,
		ZeroContent:  rp.RemoveZeroContent,
		AroundNodes:  rp.RemoveAroundNodes,
	}
	if rv.Index, err = revision.ParseIndexKind(rp.SpatialIndex); err != nil {
		return
	}
	if viper.GetBool("verbose") {
		rv.Logger = log.New(os.Stderr, "meshrev: ", log.LstdFlags)
	}
	return
}

// outputFile defaults to the input name with the operation appended
func (rv *Revision) outputFile() string {
	if len(rv.OutputFile) != 0 {
		return rv.OutputFile
	}
	ext := filepath.Ext(rv.MeshFile)
	return strings.TrimSuffix(rv.MeshFile, ext) + "-" + rv.Operation + ".msh"
}

func (rv *Revision) meshName() string {
	if len(rv.MeshName) != 0 {
		return rv.MeshName
	}
	base := filepath.Base(rv.outputFile())
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (rv *Revision) reviser(m *mesh.Mesh) *revision.Reviser {
	return revision.New(m,
		revision.WithLogger(rv.Logger),
		revision.WithIndex(rv.Index),
		revision.WithGridCellCapacity(rv.CellCapacity),
	)
}

// Run reads the mesh, applies the operation and writes the result. The
// analyze operation only prints.
func (rv *Revision) Run() (out *mesh.Mesh, err error) {
	start := time.Now()
	var m *mesh.Mesh
	if m, err = readers.ReadMeshFile(rv.MeshFile); err != nil {
		return
	}
	fmt.Printf("Read %s: %d nodes, %d elements in %v\n",
		rv.MeshFile, m.NumNodes(), m.NumElements(), time.Since(start))

	r := rv.reviser(m)
	switch rv.Operation {
	case "analyze":
		m.PrintStatistics()
		fmt.Printf("  Collapsible nodes at tolerance %g: %d\n",
			rv.Tolerance, r.CountCollapsibleNodes(rv.Tolerance))
		return m, nil
	case "collapse":
		out, err = r.CollapseNodes(rv.meshName(), rv.Tolerance)
	case "simplify":
		out, err = r.SimplifyMesh(rv.meshName(), rv.Tolerance, rv.MinDim)
	case "subdivide":
		out, err = r.SubdivideMesh(rv.meshName())
	case "remove":
		out, err = rv.remove(r)
	default:
		err = fmt.Errorf("unknown operation %q", rv.Operation)
	}
	if err != nil {
		return nil, err
	}
	fmt.Printf("%s: %d nodes, %d elements in %v\n",
		rv.Operation, out.NumNodes(), out.NumElements(), time.Since(start))
	if err = readers.WriteGmsh22File(rv.outputFile(), out); err != nil {
		return nil, err
	}
	fmt.Printf("Wrote %s\n", rv.outputFile())
	return
}

// remove marks the selected elements and builds the mesh without them
func (rv *Revision) remove(r *revision.Reviser) (*mesh.Mesh, error) {
	x := r.ElementExtraction()
	for _, mat := range rv.Materials {
		fmt.Printf("  material %d: %d elements\n", mat, x.SearchByMaterial(mat))
	}
	for _, name := range rv.Types {
		et := utils.ParseElementType(name)
		if et == utils.Unknown {
			return nil, fmt.Errorf("unknown element type %q", name)
		}
		fmt.Printf("  type %s: %d elements\n", et, x.SearchByType(et))
	}
	if rv.ZeroContent {
		fmt.Printf("  zero content: %d elements\n", x.SearchByZeroContent())
	}
	for _, n := range rv.AroundNodes {
		fmt.Printf("  around node %d: %d elements\n", n, x.SearchByNode(n))
	}
	return x.RemoveElements(rv.meshName())
}

// newRevisionCommand builds the commands writing a revised mesh, which
// differ in the operation run and their extra flags
func newRevisionCommand(op, short string) *cobra.Command {
	c := &cobra.Command{
		Use:   op,
		Short: short,
		Long:  short + "\n\nmeshrev " + op + " -F input.msh -o output.msh",
		Run: func(cmd *cobra.Command, args []string) {
			rv, err := revisionFromFlags(cmd, op)
			exitOnError(err)
			out, err := rv.Run()
			exitOnError(err)
			out.PrintStatistics()
		},
	}
	c.Flags().StringP("meshFile", "F", "", "mesh file to read in .msh, .neu or .su2 format")
	c.Flags().StringP("output", "o", "", "Gmsh 2.2 file to write, default is the input name with the operation appended")
	c.Flags().StringP("name", "n", "", "name of the revised mesh")
	return c
}

func init() {
	rootCmd.AddCommand(
		newRevisionCommand("collapse", "Merge nodes closer than the tolerance"),
		newRevisionCommand("subdivide", "Split elements with non-planar faces into planar elements"),
	)
}
