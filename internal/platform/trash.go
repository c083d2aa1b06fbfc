package platform

import (
	"context"
	"fmt"
	"strings"
)

// CommandTrasher moves paths to the trash by running a command.
type CommandTrasher struct {
	cmd Command
}

// NewTrasher builds a trasher from a trash_command setting. Deleting
// templates is never done in-process, so there is no "none" fallback.
func NewTrasher(setting, goos string) (*CommandTrasher, error) {
	switch strings.TrimSpace(setting) {
	case "", SettingAuto:
		switch goos {
		case "darwin":
			return &CommandTrasher{cmd: Command{Name: "trash"}}, nil
		case "linux", "freebsd", "openbsd":
			return &CommandTrasher{cmd: Command{Name: "gio", Args: []string{"trash"}}}, nil
		default:
			return nil, fmt.Errorf("trash_command: %w (%s)", ErrUnsupported, goos)
		}
	case SettingNone:
		return nil, fmt.Errorf("trash_command cannot be %q", SettingNone)
	}

	cmd, err := ParseCommand(setting)
	if err != nil {
		return nil, err
	}
	return &CommandTrasher{cmd: cmd}, nil
}

// Command returns the configured command.
func (t *CommandTrasher) Command() Command {
	return t.cmd
}

// Trash runs the command on path.
func (t *CommandTrasher) Trash(ctx context.Context, path string) error {
	return t.cmd.Fill(map[string]string{"path": path}, path).Run(ctx, nil, nil, nil)
}
