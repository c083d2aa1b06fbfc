package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tm-labs/templatesmanager/internal/branding"
	"github.com/tm-labs/templatesmanager/internal/config"
	"github.com/tm-labs/templatesmanager/internal/userdata"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// settings is resolved once per invocation by the root PersistentPreRunE.
var settings *config.Settings

// skipStorage lists commands that must not create the storage layout.
var skipStorage = map[string]bool{
	"config":   true,
	"get":      true,
	"set":      true,
	"path":     true,
	"validate": true,
	"doctor":   true,
	"version":  true,
	"help":     true,
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a local library of template files and folders and a list of
remote template URLs, and copies either into the current file-manager folder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		s, err := config.Resolve()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		settings = s

		if skipStorage[cmd.Name()] {
			return nil
		}
		if err := userdata.Ensure(io.Discard, storageLayout()); err != nil {
			return fmt.Errorf("preparing storage: %w", err)
		}
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", color.RedString("Error:"), err)
	}
	return err
}

func storageLayout() userdata.Layout {
	return userdata.Layout{Root: settings.DataRoot}
}
