// Package cli provides the cobra command builders shared by the
// trieproof executables.
package cli

import (
	"github.com/spf13/cobra"
)

// cobraCommand is used to implement any type of cobra command
// for any of the trieproof command-line tools.
type cobraCommand interface {
	Build() *cobra.Command
}
