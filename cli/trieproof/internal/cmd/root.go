// Package cmd implements the CLI commands for trieproof.
package cmd

import (
	"github.com/coniks-sys/trieproof-go/application/prover"
	"github.com/coniks-sys/trieproof-go/cli"
	"github.com/spf13/cobra"
)

// RootCmd represents the base "trieproof" command when called without any subcommands.
var RootCmd = cli.NewRootCommand("trieproof",
	"Membership proofs over a hash-linked trie",
	`trieproof stores key-value pairs in a content-addressed trie and
issues proofs that a key maps to a value under a given root hash.
A proof can be checked by anyone holding the root hash alone.`)

func loadProver(cmd *cobra.Command) (*prover.Prover, error) {
	conf := new(prover.Config)
	if err := conf.Load(cli.ConfigPath(cmd), "toml"); err != nil {
		return nil, err
	}
	return prover.New(conf)
}
