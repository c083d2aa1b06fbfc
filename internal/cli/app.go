package cli

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tm-labs/templatesmanager/internal/branding"
	"github.com/tm-labs/templatesmanager/internal/fetch"
	"github.com/tm-labs/templatesmanager/internal/hook"
	"github.com/tm-labs/templatesmanager/internal/manager"
	"github.com/tm-labs/templatesmanager/internal/platform"
	"github.com/tm-labs/templatesmanager/internal/registry"
)

// goos is the platform whose "auto" service commands are used.
var goos = runtime.GOOS

// unavailableTrasher defers a trash configuration error until something is
// actually deleted.
type unavailableTrasher struct {
	err error
}

func (t unavailableTrasher) Trash(context.Context, string) error {
	return t.err
}

// newManager wires a Manager from the resolved settings. target overrides
// the configured target directory query when non-empty.
func newManager(cmd *cobra.Command, target string) (*manager.Manager, error) {
	layout := storageLayout()

	var trasher registry.Trasher
	if t, err := platform.NewTrasher(settings.TrashCommand, goos); err != nil {
		trasher = unavailableTrasher{err: err}
	} else {
		trasher = t
	}

	notifier, err := platform.NewNotifier(settings.NotifyCommand, goos)
	if err != nil {
		return nil, fmt.Errorf("configuring notifications: %w", err)
	}
	resolver, err := platform.NewTargetResolver(settings.TargetCommand, target, goos)
	if err != nil {
		return nil, fmt.Errorf("configuring target directory: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	return manager.New(manager.Deps{
		Local:    registry.NewLocal(layout.LocalDir(), trasher),
		Remote:   registry.NewRemote(layout.RemoteFile()),
		Notifier: notifier,
		Target:   resolver,
		Hooks:    hook.NewRunner(hook.WithOutput(cmd.OutOrStdout(), stderr)),
		Fetcher: fetch.New(
			fetch.WithTimeout(settings.HTTPTimeout),
			fetch.WithUserAgent(branding.CLIName()+"/"+buildVersion),
		),
		Title: branding.DisplayName(),
		OnNotifyError: func(err error) {
			printWarning(stderr, "%v", err)
		},
	}), nil
}

// parsePosition converts an ordinal argument into a listing position.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid position %q: want a non-negative integer", arg)
	}
	return n, nil
}
