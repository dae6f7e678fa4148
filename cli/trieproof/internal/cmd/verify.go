package cmd

import (
	"errors"
	"fmt"

	"github.com/coniks-sys/trieproof-go/application"
	"github.com/coniks-sys/trieproof-go/application/prover"
	"github.com/coniks-sys/trieproof-go/cli"
	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/utils/maybe"
	"github.com/spf13/cobra"
)

var errRejected = errors.New("Proof rejected")

var verifyCmd = cli.NewConfigCommand("verify FILE",
	"Check the proof in FILE and print the value it proves.", 1, verify)

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringP("root", "r", "",
		"Trusted root hash (hex); without it the root of the configured trie is used")
}

func verify(cmd *cobra.Command, args []string) error {
	msg, err := application.ReadProofFile(args[0])
	if err != nil {
		return err
	}

	var ok bool
	var value maybe.Maybe[[]byte]
	if hex := cmd.Flag("root").Value.String(); hex != "" {
		root, err := crypto.HashFromHex(hex)
		if err != nil {
			return err
		}
		logger, err := application.NewLogger(nil)
		if err != nil {
			return err
		}
		defer logger.Sync()
		if ok, value, err = prover.NewVerifier(logger).Verify(root, msg); err != nil {
			return err
		}
	} else {
		p, err := loadProver(cmd)
		if err != nil {
			return err
		}
		defer p.Close()
		if ok, value, err = p.Verify(msg); err != nil {
			return err
		}
	}

	if !ok {
		return errRejected
	}
	if value.IsNothing() {
		fmt.Fprintf(cmd.OutOrStdout(), "valid: %q has no value\n", msg.Key)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid: %q = %q\n", msg.Key, value.Value())
	return nil
}
