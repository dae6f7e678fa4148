// Executable trieproof keeps a trie on disk and issues and checks
// membership proofs for its keys.
package main

import (
	"github.com/coniks-sys/trieproof-go/cli"
	"github.com/coniks-sys/trieproof-go/cli/trieproof/internal/cmd"
)

func main() {
	cli.ExecuteRoot(cmd.RootCmd)
}
