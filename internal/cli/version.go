package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tm-labs/templatesmanager/internal/branding"
	"github.com/tm-labs/templatesmanager/internal/updater"
)

var (
	versionShort bool
	versionJSON  bool
	versionCheck bool

	// releaseAPIBase overrides the GitHub API endpoint in tests.
	releaseAPIBase string
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch {
		case versionShort:
			fmt.Fprintln(out, buildVersion)
		case versionJSON:
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
		default:
			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		}

		if versionCheck {
			return checkForUpdate(cmd)
		}
		return nil
	},
}

func checkForUpdate(cmd *cobra.Command) error {
	opts := []updater.Option{updater.WithToken(os.Getenv("GITHUB_TOKEN"))}
	if releaseAPIBase != "" {
		opts = append(opts, updater.WithAPIBase(releaseAPIBase))
	}
	st, err := updater.New(buildVersion, branding.GitHubRepo(), opts...).Check(cmd.Context())
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}

	w := cmd.ErrOrStderr()
	if st.UpdateAvailable {
		printWarning(w, "%s is available (running %s): %s", st.Latest.TagName, st.Current, st.Latest.HTMLURL)
		return nil
	}
	printSuccess(w, "%s is up to date", buildVersion)
	return nil
}
