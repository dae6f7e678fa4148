package cmd

import (
	"fmt"

	"github.com/coniks-sys/trieproof-go/cli"
	"github.com/spf13/cobra"
)

var getCmd = cli.NewConfigCommand("get KEY",
	"Print the value stored under KEY.", 1, get)

func init() {
	RootCmd.AddCommand(getCmd)
}

func get(cmd *cobra.Command, args []string) error {
	p, err := loadProver(cmd)
	if err != nil {
		return err
	}
	defer p.Close()

	v, err := p.Lookup([]byte(args[0]))
	if err != nil {
		return err
	}
	if v.IsNothing() {
		return fmt.Errorf("No value stored under %q", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(v.Value()))
	return nil
}
