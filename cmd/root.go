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
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meshrev",
	Short: "Topological revision of unstructured meshes",
	Long: `
Collapses coincident nodes, reduces the elements that lost nodes to valid
lower order elements and subdivides elements with non-planar faces.

Meshes are read in Gmsh 2.2 (.msh), Gambit neutral (.neu) or SU2 (.su2)
format and written in Gmsh 2.2 ASCII format.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch strings.ToLower(viper.GetString("profile")) {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		default:
			exitOnError(fmt.Errorf("unknown profile %q, must be cpu or mem", viper.GetString("profile")))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.meshrev.yaml)")
	pf.BoolP("verbose", "v", false, "log every revised element to stderr")
	pf.String("profile", "", "write a cpu or mem profile to the current directory")
	pf.Float64P("tolerance", "t", defaultTolerance, "nodes closer than this are collapsed")
	pf.String("index", "grid", "spatial index used to find coincident nodes: grid or kdtree")
	pf.Int("cell-capacity", defaultCellCapacity, "mean number of nodes per cell of the grid index")
	for _, name := range []string{"verbose", "profile", "tolerance", "index", "cell-capacity"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".meshrev")
	}

	viper.SetEnvPrefix("meshrev")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}
