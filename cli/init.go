package cli

import (
	"github.com/spf13/cobra"
)

// An initCommand creates an executable's configuration.
type initCommand struct {
	appName string
	runFunc func(cmd *cobra.Command, args []string)
}

var _ cobraCommand = (*initCommand)(nil)

// NewInitCommand constructs the "init" command of appName, which writes
// a default configuration into the directory given by its --dir flag.
func NewInitCommand(appName string, runFunc func(cmd *cobra.Command, args []string)) *cobra.Command {
	initCmd := &initCommand{
		appName: appName,
		runFunc: runFunc,
	}
	cmd := initCmd.Build()
	cmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
	return cmd
}

// Build constructs the cobra.Command according to the
// initCommand's settings.
func (initCmd *initCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:   "init",
		Short: "Create a configuration file for " + initCmd.appName + ".",
		Long:  `Create a configuration file for ` + initCmd.appName + `.`,
		Args:  cobra.NoArgs,
		Run:   initCmd.runFunc,
	}
	return &cmd
}
