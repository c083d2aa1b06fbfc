package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteLocalCmd)
	rootCmd.AddCommand(deleteRemoteCmd)
}

var deleteLocalCmd = &cobra.Command{
	Use:   "delete-local <position>",
	Short: "Move the local template at a listing position to the trash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}
		m, err := newManager(cmd, "")
		if err != nil {
			return err
		}
		name, err := m.DeleteLocal(cmd.Context(), pos)
		if err != nil {
			return err
		}
		printSuccess(cmd.ErrOrStderr(), "Trashed %s", name)
		return nil
	},
}

var deleteRemoteCmd = &cobra.Command{
	Use:   "delete-remote <position>",
	Short: "Remove the remote template URL at a listing position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}
		m, err := newManager(cmd, "")
		if err != nil {
			return err
		}
		url, err := m.DeleteRemote(cmd.Context(), pos)
		if err != nil {
			return err
		}
		printSuccess(cmd.ErrOrStderr(), "Removed %s", url)
		return nil
	},
}
