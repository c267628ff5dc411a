// Command formsctl is an operator tool for the forms backend. It talks to
// the record store with the same configuration as the server and exposes
// the link builder, slot generator and attachment encoder offline.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
