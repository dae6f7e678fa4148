package cli

import (
	"github.com/spf13/cobra"
)

// A configCommand runs one operation of an executable against the
// state named by the configuration file in the --config flag.
type configCommand struct {
	use     string
	short   string
	args    int
	runFunc func(cmd *cobra.Command, args []string) error
}

var _ cobraCommand = (*configCommand)(nil)

// NewConfigCommand constructs a command taking exactly nargs positional
// arguments. use follows cobra's usage-line convention.
func NewConfigCommand(use, short string, nargs int,
	runFunc func(cmd *cobra.Command, args []string) error) *cobra.Command {
	confCmd := &configCommand{
		use:     use,
		short:   short,
		args:    nargs,
		runFunc: runFunc,
	}
	return confCmd.Build()
}

// Build constructs the cobra.Command according to the
// configCommand's settings.
func (confCmd *configCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:   confCmd.use,
		Short: confCmd.short,
		Long: confCmd.short + `

This will look for a config file named config.toml
in the current directory if not specified differently.
	`,
		Args: cobra.ExactArgs(confCmd.args),
		RunE: confCmd.runFunc,
	}
	return &cmd
}

// ConfigPath returns the value of the --config flag of cmd.
func ConfigPath(cmd *cobra.Command) string {
	return cmd.Flag("config").Value.String()
}
