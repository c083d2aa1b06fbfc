package manager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tm-labs/templatesmanager/internal/hook"
	"github.com/tm-labs/templatesmanager/internal/registry"
)

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(_ context.Context, title, message string) error {
	f.messages = append(f.messages, title+": "+message)
	return f.err
}

type fixedTarget string

func (d fixedTarget) Dir(context.Context) (string, error) { return string(d), nil }

type recordingHooks struct {
	dirs []string
}

func (r *recordingHooks) Run(_ context.Context, dir string) hook.Result {
	r.dirs = append(r.dirs, dir)
	return hook.Result{Dir: dir}
}

type fakeFetcher struct {
	bodies map[string]string
}

func (f *fakeFetcher) Download(_ context.Context, rawURL, destDir string) (string, error) {
	body, ok := f.bodies[rawURL]
	if !ok {
		return "", fmt.Errorf("unexpected url %s", rawURL)
	}
	dst := filepath.Join(destDir, filepath.Base(rawURL))
	return dst, os.WriteFile(dst, []byte(body), 0644)
}

func (f *fakeFetcher) Copy(_ context.Context, rawURL string, w io.Writer) (int64, error) {
	body, ok := f.bodies[rawURL]
	if !ok {
		return 0, fmt.Errorf("unexpected url %s", rawURL)
	}
	n, err := io.WriteString(w, body)
	return int64(n), err
}

type removeTrasher struct{}

func (removeTrasher) Trash(_ context.Context, path string) error { return os.RemoveAll(path) }

type fixture struct {
	m        *Manager
	local    *registry.Local
	remote   *registry.Remote
	target   string
	notifier *fakeNotifier
	hooks    *recordingHooks
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	localDir := filepath.Join(root, "local")
	target := filepath.Join(root, "target")
	for _, d := range []string{localDir, target} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	f := &fixture{
		local:    registry.NewLocal(localDir, removeTrasher{}),
		remote:   registry.NewRemote(filepath.Join(root, "remote")),
		target:   target,
		notifier: &fakeNotifier{},
		hooks:    &recordingHooks{},
	}
	f.m = New(Deps{
		Local:    f.local,
		Remote:   f.remote,
		Notifier: f.notifier,
		Target:   fixedTarget(target),
		Hooks:    f.hooks,
		Fetcher: &fakeFetcher{bodies: map[string]string{
			"https://example.com/a.txt": "alpha",
			"https://example.com/b.txt": "bravo",
		}},
		Title: "TemplatesManager",
	})
	return f
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestAddLocalNotifies(t *testing.T) {
	f := newFixture(t)
	src := filepath.Join(t.TempDir(), "proj")
	writeFile(t, filepath.Join(src, "main.go"), "package main")

	name, err := f.m.AddLocal(context.Background(), src)
	if err != nil {
		t.Fatalf("AddLocal: %v", err)
	}
	if name != "proj" {
		t.Errorf("name = %q, want proj", name)
	}
	want := []string{"TemplatesManager: " + MsgLocalAdded}
	if !reflect.DeepEqual(f.notifier.messages, want) {
		t.Errorf("notifications = %v, want %v", f.notifier.messages, want)
	}
}

func TestAddLocalDuplicateNotifies(t *testing.T) {
	f := newFixture(t)
	src := filepath.Join(t.TempDir(), "proj")
	writeFile(t, filepath.Join(src, "main.go"), "package main")

	if _, err := f.m.AddLocal(context.Background(), src); err != nil {
		t.Fatal(err)
	}
	_, err := f.m.AddLocal(context.Background(), src)
	if !errors.Is(err, registry.ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
	if got := f.notifier.messages[len(f.notifier.messages)-1]; !strings.HasSuffix(got, MsgDuplicate) {
		t.Errorf("last notification = %q", got)
	}
}

func TestAddRemoteNotifies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.m.AddRemote(ctx, "https://example.com/a.txt"); err != nil {
		t.Fatalf("AddRemote: %v", err)
	}
	if err := f.m.AddRemote(ctx, "https://example.com/a.txt"); !errors.Is(err, registry.ErrDuplicateURL) {
		t.Fatalf("second AddRemote err = %v, want ErrDuplicateURL", err)
	}
	want := []string{
		"TemplatesManager: " + MsgRemoteAdded,
		"TemplatesManager: " + MsgDuplicate,
	}
	if !reflect.DeepEqual(f.notifier.messages, want) {
		t.Errorf("notifications = %v, want %v", f.notifier.messages, want)
	}
}

func TestNotifyErrorDoesNotAbort(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("no display")
	var reported []error
	f.m.deps.OnNotifyError = func(err error) { reported = append(reported, err) }

	if err := f.m.AddRemote(context.Background(), "https://example.com/a.txt"); err != nil {
		t.Fatalf("AddRemote: %v", err)
	}
	if len(reported) != 1 {
		t.Errorf("reported %d notification errors, want 1", len(reported))
	}
}

func TestDeleteLocalByPosition(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.local.Path("a.txt"), "a")
	writeFile(t, f.local.Path("b.txt"), "b")

	name, err := f.m.DeleteLocal(context.Background(), 1)
	if err != nil {
		t.Fatalf("DeleteLocal: %v", err)
	}
	if name != "b.txt" {
		t.Errorf("deleted %q, want b.txt", name)
	}
	names, _ := f.m.ListLocal()
	if !reflect.DeepEqual(names, []string{"a.txt"}) {
		t.Errorf("remaining = %v", names)
	}

	if _, err := f.m.DeleteLocal(context.Background(), 5); !errors.Is(err, registry.ErrPositionOutOfRange) {
		t.Errorf("out of range err = %v", err)
	}
}

func TestDeleteRemoteByPosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_ = f.m.AddRemote(ctx, "https://example.com/a.txt")
	_ = f.m.AddRemote(ctx, "https://example.com/b.txt")

	url, err := f.m.DeleteRemote(ctx, 0)
	if err != nil {
		t.Fatalf("DeleteRemote: %v", err)
	}
	if url != "https://example.com/a.txt" {
		t.Errorf("deleted %q", url)
	}
	urls, _ := f.m.ListRemote()
	if !reflect.DeepEqual(urls, []string{"https://example.com/b.txt"}) {
		t.Errorf("remaining = %v", urls)
	}
}

func TestPutLocalDirectoryRunsHook(t *testing.T) {
	f := newFixture(t)
	writeFile(t, filepath.Join(f.local.Path("proj"), "main.go"), "package main")

	res, err := f.m.PutLocal(context.Background(), 0)
	if err != nil {
		t.Fatalf("PutLocal: %v", err)
	}
	dst := filepath.Join(f.target, "proj")
	if !reflect.DeepEqual(res.Paths, []string{dst}) {
		t.Errorf("paths = %v", res.Paths)
	}
	if _, err := os.Stat(filepath.Join(dst, "main.go")); err != nil {
		t.Errorf("main.go not copied: %v", err)
	}
	if !reflect.DeepEqual(f.hooks.dirs, []string{dst}) {
		t.Errorf("hook dirs = %v, want [%s]", f.hooks.dirs, dst)
	}
	if res.Hook == nil || res.Hook.Dir != dst {
		t.Errorf("hook result = %+v", res.Hook)
	}
}

func TestPutLocalFileSkipsHook(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.local.Path("notes.md"), "# notes")

	res, err := f.m.PutLocal(context.Background(), 0)
	if err != nil {
		t.Fatalf("PutLocal: %v", err)
	}
	if res.Hook != nil {
		t.Errorf("hook ran for file template: %+v", res.Hook)
	}
	if len(f.hooks.dirs) != 0 {
		t.Errorf("hook dirs = %v", f.hooks.dirs)
	}
	data, err := os.ReadFile(filepath.Join(f.target, "notes.md"))
	if err != nil || string(data) != "# notes" {
		t.Errorf("target content = %q, %v", data, err)
	}
}

func TestPutLocalContentsOnly(t *testing.T) {
	f := newFixture(t)
	writeFile(t, filepath.Join(f.local.Path("proj"), "a.txt"), "a")
	writeFile(t, filepath.Join(f.local.Path("proj"), "sub", "b.txt"), "b")

	res, err := f.m.PutLocalContentsOnly(context.Background(), 0)
	if err != nil {
		t.Fatalf("PutLocalContentsOnly: %v", err)
	}
	if len(res.Paths) != 2 {
		t.Errorf("paths = %v", res.Paths)
	}
	for _, p := range []string{"a.txt", filepath.Join("sub", "b.txt")} {
		if _, err := os.Stat(filepath.Join(f.target, p)); err != nil {
			t.Errorf("%s not copied: %v", p, err)
		}
	}
	if !reflect.DeepEqual(f.hooks.dirs, []string{f.target}) {
		t.Errorf("hook dirs = %v, want target", f.hooks.dirs)
	}
}

func TestPutLocalContentsOnlyRejectsFile(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.local.Path("notes.md"), "# notes")

	_, err := f.m.PutLocalContentsOnly(context.Background(), 0)
	if !errors.Is(err, registry.ErrNotADirectory) {
		t.Fatalf("err = %v, want ErrNotADirectory", err)
	}
	want := []string{"TemplatesManager: " + MsgDirectoriesOnly}
	if !reflect.DeepEqual(f.notifier.messages, want) {
		t.Errorf("notifications = %v", f.notifier.messages)
	}
	entries, _ := os.ReadDir(f.target)
	if len(entries) != 0 {
		t.Errorf("target not empty: %d entries", len(entries))
	}
}

func TestPutRemote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_ = f.m.AddRemote(ctx, "https://example.com/a.txt")
	_ = f.m.AddRemote(ctx, "https://example.com/b.txt")

	res, err := f.m.PutRemote(ctx, 1)
	if err != nil {
		t.Fatalf("PutRemote: %v", err)
	}
	if res.Key != "https://example.com/b.txt" {
		t.Errorf("key = %q", res.Key)
	}
	data, err := os.ReadFile(filepath.Join(f.target, "b.txt"))
	if err != nil || string(data) != "bravo" {
		t.Errorf("downloaded = %q, %v", data, err)
	}
}

func TestPrintRemote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_ = f.m.AddRemote(ctx, "https://example.com/a.txt")

	var sb strings.Builder
	if err := f.m.PrintRemote(ctx, 0, &sb); err != nil {
		t.Fatalf("PrintRemote: %v", err)
	}
	if sb.String() != "alpha" {
		t.Errorf("printed %q, want alpha", sb.String())
	}

	if err := f.m.PrintRemote(ctx, 3, &sb); !errors.Is(err, registry.ErrPositionOutOfRange) {
		t.Errorf("out of range err = %v", err)
	}
}
