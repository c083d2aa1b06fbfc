// Package manager carries out one command against the template registries.
// It resolves ordinal positions to stable keys, sends the user notifications
// that accompany adds and aborted puts, materializes templates into the
// target directory and runs post-copy hooks.
package manager

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tm-labs/templatesmanager/internal/hook"
	"github.com/tm-labs/templatesmanager/internal/registry"
)

// Notification messages shown to the user.
const (
	MsgLocalAdded      = "Added to local templates"
	MsgRemoteAdded     = "Added to remote templates"
	MsgDuplicate       = "You already have a template with that name"
	MsgDirectoriesOnly = "This option should only be used on directories"
)

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// TargetResolver returns the directory templates are put into.
type TargetResolver interface {
	Dir(ctx context.Context) (string, error)
}

// HookRunner runs the post-copy hook found in a directory, if any.
type HookRunner interface {
	Run(ctx context.Context, dir string) hook.Result
}

// Fetcher retrieves remote templates.
type Fetcher interface {
	Download(ctx context.Context, rawURL, destDir string) (string, error)
	Copy(ctx context.Context, rawURL string, w io.Writer) (int64, error)
}

// Deps are the collaborators a Manager needs. Local and Remote are required;
// the rest are needed only by the operations that use them.
type Deps struct {
	Local    *registry.Local
	Remote   *registry.Remote
	Notifier Notifier
	Target   TargetResolver
	Hooks    HookRunner
	Fetcher  Fetcher
	Title    string
	// OnNotifyError receives notification failures, which never abort a command.
	OnNotifyError func(error)
}

// Manager performs registry operations for the CLI.
type Manager struct {
	deps Deps
}

// New creates a Manager.
func New(deps Deps) *Manager {
	return &Manager{deps: deps}
}

// PutResult describes a completed put.
type PutResult struct {
	Key   string       // Template name or URL
	Paths []string     // Paths written in the target directory
	Hook  *hook.Result // Hook outcome; nil when no directory was scanned
}

// ListLocal returns the local template names.
func (m *Manager) ListLocal() ([]string, error) {
	return m.deps.Local.List()
}

// ListRemote returns the remote template URLs.
func (m *Manager) ListRemote() ([]string, error) {
	return m.deps.Remote.List()
}

// AddLocal copies sourcePath into the local registry and notifies the user
// of the outcome.
func (m *Manager) AddLocal(ctx context.Context, sourcePath string) (string, error) {
	name, err := m.deps.Local.Add(sourcePath)
	if errors.Is(err, registry.ErrDuplicateName) {
		m.notify(ctx, MsgDuplicate)
		return "", err
	}
	if err != nil {
		return "", err
	}
	m.notify(ctx, MsgLocalAdded)
	return name, nil
}

// AddRemote appends url to the remote registry and notifies the user of
// the outcome.
func (m *Manager) AddRemote(ctx context.Context, url string) error {
	err := m.deps.Remote.Add(url)
	if errors.Is(err, registry.ErrDuplicateURL) {
		m.notify(ctx, MsgDuplicate)
		return err
	}
	if err != nil {
		return err
	}
	m.notify(ctx, MsgRemoteAdded)
	return nil
}

// DeleteLocal trashes the local template at position and returns its name.
func (m *Manager) DeleteLocal(ctx context.Context, position int) (string, error) {
	name, err := m.deps.Local.Resolve(position)
	if err != nil {
		return "", err
	}
	if err := m.deps.Local.Delete(ctx, name); err != nil {
		return "", err
	}
	return name, nil
}

// DeleteRemote removes the URL at position and returns it.
func (m *Manager) DeleteRemote(_ context.Context, position int) (string, error) {
	url, err := m.deps.Remote.Resolve(position)
	if err != nil {
		return "", err
	}
	if err := m.deps.Remote.Delete(url); err != nil {
		return "", err
	}
	return url, nil
}

// PutLocal copies the local template at position into the target directory.
// A copied directory is scanned for a hook script, which is run in it.
func (m *Manager) PutLocal(ctx context.Context, position int) (*PutResult, error) {
	name, err := m.deps.Local.Resolve(position)
	if err != nil {
		return nil, err
	}
	target, err := m.targetDir(ctx)
	if err != nil {
		return nil, err
	}

	dst, err := m.deps.Local.Put(name, target)
	if err != nil {
		return nil, err
	}
	res := &PutResult{Key: name, Paths: []string{dst}}

	isDir, err := m.deps.Local.IsDir(name)
	if err != nil {
		return res, err
	}
	if isDir {
		res.Hook = m.runHook(ctx, dst)
	}
	return res, nil
}

// PutLocalContentsOnly copies the children of the directory template at
// position into the target directory, then runs the target's hook script.
// File templates are rejected with ErrNotADirectory after notifying the user.
func (m *Manager) PutLocalContentsOnly(ctx context.Context, position int) (*PutResult, error) {
	name, err := m.deps.Local.Resolve(position)
	if err != nil {
		return nil, err
	}

	isDir, err := m.deps.Local.IsDir(name)
	if err != nil {
		return nil, err
	}
	if !isDir {
		m.notify(ctx, MsgDirectoriesOnly)
		return nil, fmt.Errorf("%w: %s", registry.ErrNotADirectory, name)
	}

	target, err := m.targetDir(ctx)
	if err != nil {
		return nil, err
	}

	paths, err := m.deps.Local.PutContentsOnly(name, target)
	if err != nil {
		return nil, err
	}
	return &PutResult{
		Key:   name,
		Paths: paths,
		Hook:  m.runHook(ctx, target),
	}, nil
}

// PutRemote downloads the URL at position into the target directory.
func (m *Manager) PutRemote(ctx context.Context, position int) (*PutResult, error) {
	url, err := m.deps.Remote.Resolve(position)
	if err != nil {
		return nil, err
	}
	if m.deps.Fetcher == nil {
		return nil, fmt.Errorf("no fetcher configured")
	}
	target, err := m.targetDir(ctx)
	if err != nil {
		return nil, err
	}

	path, err := m.deps.Fetcher.Download(ctx, url, target)
	if err != nil {
		return nil, err
	}
	return &PutResult{Key: url, Paths: []string{path}}, nil
}

// PrintRemote writes the body of the URL at position to w.
func (m *Manager) PrintRemote(ctx context.Context, position int, w io.Writer) error {
	url, err := m.deps.Remote.Resolve(position)
	if err != nil {
		return err
	}
	if m.deps.Fetcher == nil {
		return fmt.Errorf("no fetcher configured")
	}
	_, err = m.deps.Fetcher.Copy(ctx, url, w)
	return err
}

func (m *Manager) targetDir(ctx context.Context) (string, error) {
	if m.deps.Target == nil {
		return "", fmt.Errorf("no target directory configured")
	}
	return m.deps.Target.Dir(ctx)
}

func (m *Manager) runHook(ctx context.Context, dir string) *hook.Result {
	if m.deps.Hooks == nil {
		return nil
	}
	res := m.deps.Hooks.Run(ctx, dir)
	return &res
}

func (m *Manager) notify(ctx context.Context, message string) {
	if m.deps.Notifier == nil {
		return
	}
	if err := m.deps.Notifier.Notify(ctx, m.deps.Title, message); err != nil && m.deps.OnNotifyError != nil {
		m.deps.OnNotifyError(fmt.Errorf("sending notification: %w", err))
	}
}
