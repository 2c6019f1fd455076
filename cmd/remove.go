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

// RemoveCmd deletes the elements matched by any of its selections
var RemoveCmd = newRevisionCommand("remove",
	"Remove elements by material, element type, zero content or incident node")

func init() {
	rootCmd.AddCommand(RemoveCmd)
	fl := RemoveCmd.Flags()
	fl.IntSlice("material", nil, "remove elements of these materials")
	fl.StringSlice("type", nil, "remove elements of these types: Line, Triangle, Quad, Tet, Hex, Prism or Pyramid")
	fl.Bool("zero-content", false, "remove elements with zero length, area or volume")
	fl.IntSlice("node", nil, "remove the elements around these nodes")
	RemoveCmd.Example = `  meshrev remove -F nozzle.msh -o nozzle-solid.msh --type Quad,Triangle --zero-content`
}
