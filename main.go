package main

import "github.com/notargets/meshrev/cmd"

func main() {
	cmd.Execute()
}
