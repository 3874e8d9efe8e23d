// Command amrmerge runs a single-process demonstration of the
// distributed merge-tree/connected-component protocol over a
// synthetic grid, partitioned into column strips and driven to global
// termination by the coordinator package.
package main

import "github.com/katalvlaran/amrmerge/cmd/amrmerge/cmd"

func main() {
	cmd.Execute()
}
