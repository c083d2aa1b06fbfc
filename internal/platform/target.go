package platform

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// finderScript asks the frontmost file manager for its window's folder and
// falls back to the home folder.
const finderScript = `tell application "System Events"
set front_app to name of first process whose frontmost is true
if front_app is "Finder" then
tell application "Finder" to return (POSIX path of (folder of the front window as alias))
else if front_app is "Path Finder" then
tell application "Path Finder" to return (POSIX path of (target of front finder window))
else
return (POSIX path of (path to home folder))
end if
end tell`

// TargetResolver finds the directory templates are put into.
type TargetResolver struct {
	override string
	cmd      *Command
}

// NewTargetResolver builds a resolver from a target_command setting. A
// non-empty override wins over the command. Without a command the current
// working directory is used.
func NewTargetResolver(setting, override, goos string) (*TargetResolver, error) {
	r := &TargetResolver{override: override}

	switch strings.TrimSpace(setting) {
	case SettingNone:
	case "", SettingAuto:
		if goos == "darwin" {
			r.cmd = &Command{Name: "osascript", Args: []string{"-e", finderScript}}
		}
	default:
		cmd, err := ParseCommand(setting)
		if err != nil {
			return nil, err
		}
		r.cmd = &cmd
	}
	return r, nil
}

// Command returns the directory query, or nil when the working directory
// is used.
func (r *TargetResolver) Command() *Command {
	return r.cmd
}

// Dir returns the target directory. It must exist.
func (r *TargetResolver) Dir(ctx context.Context) (string, error) {
	var dir string
	switch {
	case r.override != "":
		dir = r.override
	case r.cmd != nil:
		out, err := r.cmd.Output(ctx)
		if err != nil {
			return "", fmt.Errorf("querying target directory: %w", err)
		}
		dir = strings.TrimRight(out, "\r\n")
	default:
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("target directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("target %q is not a directory", dir)
	}
	return dir, nil
}
