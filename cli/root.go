package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// A rootCommand is an executable's root command, the parent of all
// its subcommands.
type rootCommand struct {
	use   string
	short string
	long  string
}

var _ cobraCommand = (*rootCommand)(nil)

// NewRootCommand constructs the root command for the given
// executable's use, short and long descriptions. Every subcommand
// inherits its --config flag.
func NewRootCommand(use, short, long string) *cobra.Command {
	rootCmd := &rootCommand{
		use:   use,
		short: short,
		long:  long,
	}
	cmd := rootCmd.Build()
	cmd.PersistentFlags().StringP("config", "c", "config.toml", "Path to the configuration file")
	return cmd
}

// Build constructs the cobra.Command according to the
// rootCommand's settings.
func (rootCmd *rootCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:   rootCmd.use,
		Short: rootCmd.short,
		Long:  rootCmd.long,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return &cmd
}

// ExecuteRoot runs rootCmd and exits with a non-zero status on error.
func ExecuteRoot(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
