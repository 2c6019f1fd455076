package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

const (
	DefaultTolerance           = 1.e-6
	DefaultMinElementDimension = 1
	DefaultSpatialIndex        = "grid"
	DefaultGridCellCapacity    = 64
)

// Operations accepted in a run description
var Operations = []string{"collapse", "simplify", "subdivide", "analyze", "remove"}

// RevisionParameters describes one mesh revision run, obtained from a YAML
// file. ghodss/yaml converts to JSON first, so the keys are the json tags.
type RevisionParameters struct {
	Title               string  `json:"Title"`
	MeshFile            string  `json:"MeshFile"`
	OutputFile          string  `json:"OutputFile"`
	MeshName            string  `json:"MeshName"`
	Operation           string  `json:"Operation"`
	Tolerance           float64 `json:"Tolerance"`
	MinElementDimension int     `json:"MinElementDimension"`
	SpatialIndex        string  `json:"SpatialIndex"`
	GridCellCapacity    int     `json:"GridCellCapacity"`

	// Element selections of the remove operation
	RemoveMaterials   []int    `json:"RemoveMaterials"`
	RemoveTypes       []string `json:"RemoveTypes"`
	RemoveZeroContent bool     `json:"RemoveZeroContent"`
	RemoveAroundNodes []int    `json:"RemoveAroundNodes"`
}

func NewRevisionParameters() *RevisionParameters {
	return &RevisionParameters{
		Operation:           "simplify",
		Tolerance:           DefaultTolerance,
		MinElementDimension: DefaultMinElementDimension,
		SpatialIndex:        DefaultSpatialIndex,
		GridCellCapacity:    DefaultGridCellCapacity,
	}
}

// Parse overlays the YAML in data on the current values
func (rp *RevisionParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, rp); err != nil {
		return err
	}
	rp.Operation = strings.ToLower(strings.TrimSpace(rp.Operation))
	return rp.Validate()
}

func (rp *RevisionParameters) Validate() error {
	if len(rp.MeshFile) == 0 {
		return fmt.Errorf("MeshFile is required")
	}
	known := false
	for _, op := range Operations {
		if rp.Operation == op {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown Operation %q, must be one of %s",
			rp.Operation, strings.Join(Operations, ", "))
	}
	if rp.Operation != "analyze" && len(rp.OutputFile) == 0 {
		return fmt.Errorf("OutputFile is required for %s", rp.Operation)
	}
	if rp.Operation == "remove" && len(rp.RemoveMaterials)+len(rp.RemoveTypes)+len(rp.RemoveAroundNodes) == 0 &&
		!rp.RemoveZeroContent {
		return fmt.Errorf("remove needs RemoveMaterials, RemoveTypes, RemoveZeroContent or RemoveAroundNodes")
	}
	if rp.Operation != "subdivide" && rp.Operation != "remove" && !(rp.Tolerance > 0) {
		return fmt.Errorf("Tolerance must be positive, got %g", rp.Tolerance)
	}
	if rp.MinElementDimension < 1 || rp.MinElementDimension > 3 {
		return fmt.Errorf("MinElementDimension must be 1, 2 or 3, got %d", rp.MinElementDimension)
	}
	return nil
}

func (rp *RevisionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t= Mesh File\n", rp.MeshFile)
	if len(rp.OutputFile) != 0 {
		fmt.Printf("[%s]\t\t= Output File\n", rp.OutputFile)
	}
	fmt.Printf("[%s]\t\t\t= Operation\n", rp.Operation)
	fmt.Printf("%8.5g\t\t= Tolerance\n", rp.Tolerance)
	fmt.Printf("[%d]\t\t\t\t= Min Element Dimension\n", rp.MinElementDimension)
	fmt.Printf("[%s]\t\t\t= Spatial Index\n", rp.SpatialIndex)
	fmt.Printf("[%d]\t\t\t\t= Grid Cell Capacity\n", rp.GridCellCapacity)
	if rp.Operation == "remove" {
		fmt.Printf("%v\t\t\t= Remove Materials\n", rp.RemoveMaterials)
		fmt.Printf("%v\t\t\t= Remove Types\n", rp.RemoveTypes)
		fmt.Printf("[%t]\t\t\t= Remove Zero Content\n", rp.RemoveZeroContent)
		fmt.Printf("%v\t\t\t= Remove Around Nodes\n", rp.RemoveAroundNodes)
	}
}
