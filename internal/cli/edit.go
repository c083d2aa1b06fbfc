package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tm-labs/templatesmanager/internal/platform"
)

func init() {
	rootCmd.AddCommand(editLocalCmd)
	rootCmd.AddCommand(editRemoteCmd)
}

var editLocalCmd = &cobra.Command{
	Use:   "edit-local",
	Short: "Open the local templates folder in the file manager",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := platform.NewFolderOpener(settings.OpenCommand, goos)
		if err != nil {
			return err
		}
		dir := storageLayout().LocalDir()
		if err := o.Open(cmd.Context(), dir); err != nil {
			return fmt.Errorf("opening %s: %w", dir, err)
		}
		return nil
	},
}

var editRemoteCmd = &cobra.Command{
	Use:   "edit-remote",
	Short: "Edit the remote template list in a text editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := platform.NewTextEditor(settings.EditCommand, goos)
		if err != nil {
			return err
		}
		file := storageLayout().RemoteFile()
		if err := o.Open(cmd.Context(), file); err != nil {
			return fmt.Errorf("editing %s: %w", file, err)
		}
		return nil
	},
}
