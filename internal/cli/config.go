package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tm-labs/templatesmanager/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write TemplatesManager configuration stored at ~/.templatesmanager/config.yaml.

Known keys: ` + strings.Join(config.Keys(), ", ") + `.
Every key can also be set through the environment, e.g. TM_DATA_ROOT.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !config.IsKey(key) {
			return fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(config.Keys(), ", "))
		}
		value := config.Get(key)
		if key == config.KeyDataRoot {
			value = settings.DataRoot
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FilePath()
		if len(args) == 1 {
			path = args[0]
		}
		ok, err := validateConfigFile(cmd, path)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s is not a valid configuration", path)
		}
		return nil
	},
}

// validateConfigFile prints a report for path. A missing file is valid.
func validateConfigFile(cmd *cobra.Command, path string) (bool, error) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config validation: %s\n", path)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out, "  [ OK ] No config file, using defaults")
		return true, nil
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false, nil
	}
	if result.Valid {
		fmt.Fprintln(out, "  [ OK ] Valid configuration")
		return true, nil
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "  [FAIL] %s\n", issue)
	}
	return false, nil
}
