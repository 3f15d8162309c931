// Command cplc is the CPL-to-QUAD compiler's CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/efratelisha/cplc/cmd/cplc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
