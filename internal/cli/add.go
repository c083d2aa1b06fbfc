package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addLocalCmd)
	rootCmd.AddCommand(addRemoteCmd)
}

var addLocalCmd = &cobra.Command{
	Use:   "add-local <path>",
	Short: "Copy a file or folder into the local templates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd, "")
		if err != nil {
			return err
		}
		name, err := m.AddLocal(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSuccess(cmd.ErrOrStderr(), "Added %s to local templates", name)
		return nil
	},
}

var addRemoteCmd = &cobra.Command{
	Use:   "add-remote <url>",
	Short: "Add a URL to the remote templates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd, "")
		if err != nil {
			return err
		}
		if err := m.AddRemote(cmd.Context(), args[0]); err != nil {
			return err
		}
		printSuccess(cmd.ErrOrStderr(), "Added %s to remote templates", args[0])
		return nil
	},
}
