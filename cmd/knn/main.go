// Package main provides the knn CLI tool.
//
// Usage:
//
//	knn [flags] <command> [args]
//
// Commands:
//
//	classify - learn a dataset's samples and classify its queries
//	inspect  - report how a dataset's samples land in the exemplar store
//
// Datasets are YAML or JSON files:
//
//	neighbors: 4
//	capacity: 20
//	samples:
//	  - label: cat
//	    positions: [1, 2, 3]
//	queries:
//	  - name: q1
//	    positions: [2]
//	    max_results: 1
package main

import (
	"fmt"
	"os"

	"github.com/RiswanBasha/knn/cmd/knn/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
