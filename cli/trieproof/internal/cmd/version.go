package cmd

import (
	"github.com/coniks-sys/trieproof-go/cli"
)

var versionCmd = cli.NewVersionCommand("trieproof")

func init() {
	RootCmd.AddCommand(versionCmd)
}
