package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tm-labs/templatesmanager/internal/present"
)

var listFormat string

func init() {
	for _, c := range []*cobra.Command{listLocalCmd, listRemoteCmd} {
		c.Flags().StringVar(&listFormat, "format", present.FormatXML, "Output format: xml, json or table")
		rootCmd.AddCommand(c)
	}
}

var listLocalCmd = &cobra.Command{
	Use:   "list-local",
	Short: "List local templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd, "")
		if err != nil {
			return err
		}
		names, err := m.ListLocal()
		if err != nil {
			return err
		}
		return renderListing(cmd, present.KindLocal, names)
	},
}

var listRemoteCmd = &cobra.Command{
	Use:   "list-remote",
	Short: "List remote template URLs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd, "")
		if err != nil {
			return err
		}
		urls, err := m.ListRemote()
		if err != nil {
			return err
		}
		return renderListing(cmd, present.KindRemote, urls)
	},
}

func renderListing(cmd *cobra.Command, kind present.Kind, entries []string) error {
	items := present.Items(kind, entries, settings.Icon)
	if err := present.Render(cmd.OutOrStdout(), listFormat, items); err != nil {
		return fmt.Errorf("rendering listing: %w", err)
	}
	return nil
}
