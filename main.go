// Package main is the entry point for the catchup CLI.
package main

import (
	"github.com/catchup-cli/catchup/cmd"
	"github.com/catchup-cli/catchup/config"
	"github.com/catchup-cli/catchup/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go log.CollectGarbage(log.Retention)

	cmd.Execute()
}
