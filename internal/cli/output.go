package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tm-labs/templatesmanager/internal/hook"
)

var (
	successMark = color.New(color.FgGreen).SprintFunc()
	warnColor   = color.New(color.FgYellow).SprintFunc()
)

func printSuccess(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", successMark("✓"), fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warnColor("Warning:"), fmt.Sprintf(format, args...))
}

// reportHook describes a hook outcome on w. A failed hook is a warning.
func reportHook(w io.Writer, res *hook.Result) {
	switch {
	case res == nil:
	case res.Err != nil:
		printWarning(w, "hook in %s: %v", res.Dir, res.Err)
	case !res.Found():
	case res.ExitCode != 0:
		printWarning(w, "hook %s in %s exited with status %d", res.Script, res.Dir, res.ExitCode)
	default:
		printSuccess(w, "Ran hook %s", res.Script)
	}
}
