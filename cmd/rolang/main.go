// ==============================================================================================
// FILE: cmd/rolang/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: Entry point; delegates straight to the cobra command tree.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/xslendix/rolang/cmd/rolang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
