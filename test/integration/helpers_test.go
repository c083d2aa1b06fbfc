//go:build integration

package integration_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tm-labs/templatesmanager/internal/fetch"
	"github.com/tm-labs/templatesmanager/internal/hook"
	"github.com/tm-labs/templatesmanager/internal/manager"
	"github.com/tm-labs/templatesmanager/internal/platform"
	"github.com/tm-labs/templatesmanager/internal/registry"
	"github.com/tm-labs/templatesmanager/internal/userdata"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	Layout    userdata.Layout // Storage under a temp data root
	TargetDir string          // Where templates are put
	SourceDir string          // Where test templates are authored
	Manager   *manager.Manager
	Notices   *notices
}

// notices records notifications instead of showing them.
type notices struct {
	messages []string
}

func (n *notices) Notify(_ context.Context, _, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

// setupTestEnv creates the storage layout in a temp dir and wires a Manager
// the way the CLI does, with real platform commands for trash and target.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		Layout:    userdata.Layout{Root: filepath.Join(t.TempDir(), "data")},
		TargetDir: t.TempDir(),
		SourceDir: t.TempDir(),
		Notices:   &notices{},
	}
	if err := userdata.Ensure(io.Discard, env.Layout); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	trasher, err := platform.NewTrasher("rm -rf {path}", "linux")
	if err != nil {
		t.Fatalf("NewTrasher: %v", err)
	}
	target, err := platform.NewTargetResolver(platform.SettingNone, env.TargetDir, "linux")
	if err != nil {
		t.Fatalf("NewTargetResolver: %v", err)
	}

	env.Manager = manager.New(manager.Deps{
		Local:    registry.NewLocal(env.Layout.LocalDir(), trasher),
		Remote:   registry.NewRemote(env.Layout.RemoteFile()),
		Notifier: env.Notices,
		Target:   target,
		Hooks:    hook.NewRunner(hook.WithOutput(io.Discard, io.Discard)),
		Fetcher:  fetch.New(),
		Title:    "TemplatesManager",
	})
	return env
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to exist (err=%v)", path, err)
	}
}
