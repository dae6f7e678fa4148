package cmd

import (
	"fmt"

	"github.com/coniks-sys/trieproof-go/application"
	"github.com/coniks-sys/trieproof-go/cli"
	"github.com/spf13/cobra"
)

var proveCmd = cli.NewConfigCommand("prove KEY",
	"Generate a membership proof for KEY against the current root.", 1, prove)

func init() {
	RootCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringP("output", "o", "", "Write the proof to this file instead of stdout")
}

func prove(cmd *cobra.Command, args []string) error {
	p, err := loadProver(cmd)
	if err != nil {
		return err
	}
	defer p.Close()

	msg, err := p.Prove([]byte(args[0]))
	if err != nil {
		return err
	}
	if out := cmd.Flag("output").Value.String(); out != "" {
		return application.WriteProofFile(out, msg)
	}
	b, err := application.MarshalProofMessage(msg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
