package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tm-labs/templatesmanager/internal/manager"
)

var putTarget string

func init() {
	for _, c := range []*cobra.Command{putLocalCmd, putLocalContentsOnlyCmd, putRemoteCmd} {
		c.Flags().StringVar(&putTarget, "target", "", "Directory to put the template into (default: file manager's current folder)")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(printRemoteCmd)
}

var putLocalCmd = &cobra.Command{
	Use:   "put-local <position>",
	Short: "Copy a local template into the target directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPut(cmd, args[0], (*manager.Manager).PutLocal)
	},
}

var putLocalContentsOnlyCmd = &cobra.Command{
	Use:   "put-local-contents-only <position>",
	Short: "Copy the contents of a local template folder into the target directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPut(cmd, args[0], (*manager.Manager).PutLocalContentsOnly)
	},
}

var putRemoteCmd = &cobra.Command{
	Use:   "put-remote <position>",
	Short: "Download a remote template into the target directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPut(cmd, args[0], (*manager.Manager).PutRemote)
	},
}

var printRemoteCmd = &cobra.Command{
	Use:   "print-remote <position>",
	Short: "Write a remote template's contents to stdout",
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
		return m.PrintRemote(cmd.Context(), pos, cmd.OutOrStdout())
	},
}

type putFunc func(m *manager.Manager, ctx context.Context, position int) (*manager.PutResult, error)

func runPut(cmd *cobra.Command, arg string, put putFunc) error {
	pos, err := parsePosition(arg)
	if err != nil {
		return err
	}
	m, err := newManager(cmd, putTarget)
	if err != nil {
		return err
	}
	res, err := put(m, cmd.Context(), pos)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	for _, p := range res.Paths {
		printSuccess(stderr, "Created %s", p)
	}
	reportHook(stderr, res.Hook)
	return nil
}
