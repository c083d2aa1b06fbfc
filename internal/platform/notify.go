package platform

import (
	"context"
	"strings"
)

// Notifier shows a user-facing desktop notification.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// NopNotifier discards notifications.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(context.Context, string, string) error { return nil }

// CommandNotifier shows notifications by running a command.
type CommandNotifier struct {
	cmd Command
}

// NewNotifier builds a Notifier from a notify_command setting.
func NewNotifier(setting, goos string) (Notifier, error) {
	switch strings.TrimSpace(setting) {
	case SettingNone:
		return NopNotifier{}, nil
	case "", SettingAuto:
		switch goos {
		case "darwin":
			return appleScriptNotifier{}, nil
		case "linux", "freebsd", "openbsd":
			return &CommandNotifier{cmd: Command{Name: "notify-send", Args: []string{"{title}", "{message}"}}}, nil
		default:
			return NopNotifier{}, nil
		}
	}

	cmd, err := ParseCommand(setting)
	if err != nil {
		return nil, err
	}
	return &CommandNotifier{cmd: cmd}, nil
}

// Command returns the configured command.
func (n *CommandNotifier) Command() Command {
	return n.cmd
}

// Notify runs the command with {title} and {message} filled in. Without
// placeholders the message is appended.
func (n *CommandNotifier) Notify(ctx context.Context, title, message string) error {
	cmd := n.cmd.Fill(map[string]string{"title": title, "message": message}, message)
	return cmd.Run(ctx, nil, nil, nil)
}

// appleScriptNotifier uses osascript's display notification.
type appleScriptNotifier struct{}

func (appleScriptNotifier) Command() Command {
	return Command{Name: "osascript"}
}

func (appleScriptNotifier) Notify(ctx context.Context, title, message string) error {
	script := "display notification " + appleScriptString(message) + " with title " + appleScriptString(title)
	return Command{Name: "osascript", Args: []string{"-e", script}}.Run(ctx, nil, nil, nil)
}

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
