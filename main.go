// Package main is the entry point for the subgrab application.
package main

import (
	"github.com/samber/lo"
	"github.com/subgrab-cli/subgrab/cmd"
	"github.com/subgrab-cli/subgrab/config"
	"github.com/subgrab-cli/subgrab/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
