package cmd

import (
	"fmt"

	"github.com/coniks-sys/trieproof-go/cli"
	"github.com/spf13/cobra"
)

var putCmd = cli.NewConfigCommand("put KEY VALUE",
	"Store VALUE under KEY and print the new root hash.", 2, put)

func init() {
	RootCmd.AddCommand(putCmd)
}

func put(cmd *cobra.Command, args []string) error {
	p, err := loadProver(cmd)
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Insert([]byte(args[0]), []byte(args[1])); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.RootHash())
	return nil
}
