package cmd

import (
	"log"
	"path"

	"github.com/coniks-sys/trieproof-go/application"
	"github.com/coniks-sys/trieproof-go/application/prover"
	"github.com/coniks-sys/trieproof-go/cli"
	"github.com/spf13/cobra"
)

var initCmd = cli.NewInitCommand("trieproof", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("backend", "b", prover.LevelDB, "Storage backend: leveldb, bolt or memory")
}

func initRunFunc(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	backend := cmd.Flag("backend").Value.String()

	storage := &prover.StorageConfig{Backend: backend}
	switch backend {
	case prover.LevelDB:
		storage.Path = "trie.leveldb"
	case prover.Bolt:
		storage.Path = "trie.db"
	case prover.Memory:
	default:
		log.Fatalf("Unknown backend %q", backend)
	}

	conf := prover.NewConfig(path.Join(dir, "config.toml"), "toml", storage)
	conf.Logger = &application.LoggerConfig{
		Environment: "production",
		Path:        "trieproof.log",
	}
	if err := conf.Save(); err != nil {
		log.Fatal(err)
	}
}
