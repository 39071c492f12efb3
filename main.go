package main

import (
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
