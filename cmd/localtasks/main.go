package main

import (
	"os"

	"github.com/pveldman/tasklane/localcli"
)

func main() {
	cmd := localcli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
