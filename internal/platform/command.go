package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Setting values understood by every service constructor.
const (
	SettingAuto = "auto"
	SettingNone = "none"
)

// ErrUnsupported indicates no built-in command exists for the current OS.
var ErrUnsupported = errors.New("no default command for this platform")

// Command is an external program and its arguments.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits line with shell quoting rules. Environment variables
// such as $EDITOR are expanded.
func ParseCommand(line string) (Command, error) {
	p := shellwords.NewParser()
	p.ParseEnv = true

	words, err := p.Parse(line)
	if err != nil {
		return Command{}, fmt.Errorf("parsing command %q: %w", line, err)
	}
	if len(words) == 0 {
		return Command{}, fmt.Errorf("parsing command %q: empty command", line)
	}
	return Command{Name: words[0], Args: words[1:]}, nil
}

// String renders the command for diagnostics.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Fill substitutes {key} placeholders in the arguments with values. When no
// placeholder is present, trailing is appended instead.
func (c Command) Fill(values map[string]string, trailing ...string) Command {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", values[k])
	}
	r := strings.NewReplacer(pairs...)

	out := Command{Name: c.Name, Args: make([]string, 0, len(c.Args)+len(trailing))}
	used := false
	for _, arg := range c.Args {
		filled := r.Replace(arg)
		if !used {
			for _, k := range keys {
				if strings.Contains(arg, "{"+k+"}") {
					used = true
					break
				}
			}
		}
		out.Args = append(out.Args, filled)
	}
	if !used {
		out.Args = append(out.Args, trailing...)
	}
	return out
}

// Available reports whether the program can be found on PATH.
func (c Command) Available() bool {
	_, err := exec.LookPath(c.Name)
	return err == nil
}

// Run executes the command. When stderr is nil, the program's stderr is
// captured and included in the returned error.
func (c Command) Run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout

	var captured bytes.Buffer
	if stderr != nil {
		cmd.Stderr = stderr
	} else {
		cmd.Stderr = &captured
	}

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(captured.String()); msg != "" {
			return fmt.Errorf("running %s: %w: %s", c.Name, err, msg)
		}
		return fmt.Errorf("running %s: %w", c.Name, err)
	}
	return nil
}

// Output executes the command and returns its stdout.
func (c Command) Output(ctx context.Context) (string, error) {
	var out bytes.Buffer
	if err := c.Run(ctx, nil, &out, nil); err != nil {
		return "", err
	}
	return out.String(), nil
}
