package main

import (
	"os"

	lineagecmder "github.com/papercomputeco/lineage/cmd/lineage"
)

func main() {
	cmd := lineagecmder.NewLineageCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
