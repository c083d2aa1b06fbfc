package platform

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Opener opens a path in another application.
type Opener struct {
	cmd         Command
	interactive bool
}

// NewFolderOpener builds an Opener for the open_command setting, used to
// show the local template folder in the file manager.
func NewFolderOpener(setting, goos string) (*Opener, error) {
	switch strings.TrimSpace(setting) {
	case "", SettingAuto:
		switch goos {
		case "darwin":
			return &Opener{cmd: Command{Name: "open"}}, nil
		case "windows":
			return &Opener{cmd: Command{Name: "explorer"}}, nil
		default:
			return &Opener{cmd: Command{Name: "xdg-open"}}, nil
		}
	case SettingNone:
		return nil, fmt.Errorf("open_command cannot be %q", SettingNone)
	}
	cmd, err := ParseCommand(setting)
	if err != nil {
		return nil, err
	}
	return &Opener{cmd: cmd}, nil
}

// NewTextEditor builds an Opener for the edit_command setting, used to edit
// the remote template list. Outside macOS the automatic choice is $EDITOR,
// falling back to notepad on Windows or vi elsewhere, attached to the
// terminal.
func NewTextEditor(setting, goos string) (*Opener, error) {
	switch strings.TrimSpace(setting) {
	case "", SettingAuto:
		if goos == "darwin" {
			return &Opener{cmd: Command{Name: "open", Args: []string{"-t"}}}, nil
		}
		editor := os.Getenv("EDITOR")
		if editor == "" {
			if goos == "windows" {
				editor = "notepad"
			} else {
				editor = "vi"
			}
		}
		cmd, err := ParseCommand(editor)
		if err != nil {
			return nil, err
		}
		return &Opener{cmd: cmd, interactive: true}, nil
	case SettingNone:
		return nil, fmt.Errorf("edit_command cannot be %q", SettingNone)
	}
	cmd, err := ParseCommand(setting)
	if err != nil {
		return nil, err
	}
	return &Opener{cmd: cmd, interactive: true}, nil
}

// Command returns the configured command.
func (o *Opener) Command() Command {
	return o.cmd
}

// Open runs the command on path.
func (o *Opener) Open(ctx context.Context, path string) error {
	cmd := o.cmd.Fill(map[string]string{"path": path}, path)
	if o.interactive {
		return cmd.Run(ctx, os.Stdin, os.Stdout, os.Stderr)
	}
	return cmd.Run(ctx, nil, nil, nil)
}
