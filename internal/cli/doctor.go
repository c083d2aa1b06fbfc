package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tm-labs/templatesmanager/internal/config"
	"github.com/tm-labs/templatesmanager/internal/platform"
	"github.com/tm-labs/templatesmanager/internal/userdata"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create missing storage folders and files")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for TemplatesManager installation",
	Long:  `Check the storage layout, the configured external commands and the config file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		ok := userdata.CheckLayout(out, storageLayout(), doctorFix)
		ok = checkServices(out) && ok
		valid, err := validateConfigFile(cmd, config.FilePath())
		if err != nil {
			return err
		}
		ok = valid && ok

		if !ok {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

// service is one configurable external command.
type service struct {
	key      string
	optional bool
	command  func() (*platform.Command, error)
}

func services() []service {
	return []service{
		{config.KeyNotifyCommand, true, func() (*platform.Command, error) {
			n, err := platform.NewNotifier(settings.NotifyCommand, goos)
			if err != nil {
				return nil, err
			}
			if c, ok := n.(interface{ Command() platform.Command }); ok {
				cmd := c.Command()
				return &cmd, nil
			}
			return nil, nil
		}},
		{config.KeyTargetCommand, true, func() (*platform.Command, error) {
			r, err := platform.NewTargetResolver(settings.TargetCommand, "", goos)
			if err != nil {
				return nil, err
			}
			return r.Command(), nil
		}},
		{config.KeyTrashCommand, false, func() (*platform.Command, error) {
			t, err := platform.NewTrasher(settings.TrashCommand, goos)
			if err != nil {
				return nil, err
			}
			cmd := t.Command()
			return &cmd, nil
		}},
		{config.KeyOpenCommand, true, func() (*platform.Command, error) {
			o, err := platform.NewFolderOpener(settings.OpenCommand, goos)
			if err != nil {
				return nil, err
			}
			cmd := o.Command()
			return &cmd, nil
		}},
		{config.KeyEditCommand, true, func() (*platform.Command, error) {
			o, err := platform.NewTextEditor(settings.EditCommand, goos)
			if err != nil {
				return nil, err
			}
			cmd := o.Command()
			return &cmd, nil
		}},
	}
}

// checkServices reports whether each configured command is on PATH. Only a
// missing trash command is a failure; the others degrade gracefully.
func checkServices(w io.Writer) bool {
	fmt.Fprintln(w, "Command check:")
	ok := true
	for _, s := range services() {
		cmd, err := s.command()
		switch {
		case err != nil && s.optional:
			fmt.Fprintf(w, "  [WARN] %s: %v\n", s.key, err)
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", s.key, err)
			ok = false
		case cmd == nil:
			fmt.Fprintf(w, "  [SKIP] %s: disabled\n", s.key)
		case cmd.Available():
			fmt.Fprintf(w, "  [ OK ] %s: %s\n", s.key, cmd)
		case s.optional:
			fmt.Fprintf(w, "  [WARN] %s: %s not found on PATH\n", s.key, cmd.Name)
		default:
			fmt.Fprintf(w, "  [FAIL] %s: %s not found on PATH\n", s.key, cmd.Name)
			ok = false
		}
	}
	return ok
}
