package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/graphview/pkg/errors"
	"github.com/matzehuels/graphview/pkg/observability"
	"github.com/matzehuels/graphview/pkg/render/export"
)

const forestDoc = `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <graph id="G" edgedefault="directed">
    <node id="f1" labels=":Forest"><data key="Name">Black Forest</data></node>
    <node id="s1" labels=":Site"><data key="Name">Trailhead</data></node>
    <edge source="f1" target="s1" label="CONTAINS"/>
  </graph>
</graphml>`

// testEnv isolates config and cache directories and captures stdout.
type testEnv struct {
	dir    string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	env := &testEnv{dir: dir, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	stdout = env.stdout
	t.Cleanup(func() { stdout = os.Stdout })
	return env
}

func (e *testEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func (e *testEnv) run(args ...string) error {
	c := New(e.stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)
	return root.ExecuteContext(context.Background())
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	if err := env.run("--version"); err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.Contains(env.stdout.String(), "graphview version") {
		t.Errorf("version output = %q", env.stdout.String())
	}
}

func TestRenderCommand(t *testing.T) {
	env := newTestEnv(t)
	input := env.write(t, "forest.graphml", forestDoc)
	output := filepath.Join(env.dir, "site", "graph.html")

	if err := env.run("render", input, "-o", output); err != nil {
		t.Fatalf("render error: %v", err)
	}

	abs, _ := filepath.Abs(output)
	if !strings.Contains(env.stdout.String(), "Wrote: "+abs) {
		t.Errorf("stdout = %q, want Wrote line", env.stdout.String())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !export.Injected(data) {
		t.Error("page has no export toolbar")
	}
	if !strings.Contains(string(data), `id="config"`) {
		t.Error("page has no configuration panel")
	}
}

func TestRenderCommandFlags(t *testing.T) {
	env := newTestEnv(t)
	input := env.write(t, "forest.graphml", forestDoc)
	output := filepath.Join(env.dir, "graph.html")

	if err := env.run("render", "--in", input, "--out", output, "--no-buttons", "--no-export", "--no-cache"); err != nil {
		t.Fatalf("render error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if export.Injected(data) {
		t.Error("--no-export page has a toolbar")
	}
	if strings.Contains(string(data), `id="config"`) {
		t.Error("--no-buttons page has a configuration panel")
	}
}

func TestRenderCommandConfig(t *testing.T) {
	env := newTestEnv(t)
	input := env.write(t, "forest.graphml", forestDoc)
	cfgPath := env.write(t, "graphview.toml", `
[render]
title = "Forests"
export = false

[cache]
backend = "none"
`)
	output := filepath.Join(env.dir, "graph.html")

	if err := env.run("render", input, "-o", output, "--config", cfgPath); err != nil {
		t.Fatalf("render error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if export.Injected(data) {
		t.Error("export = false in config, but page has a toolbar")
	}
	if !strings.Contains(string(data), "<title>Forests</title>") {
		t.Error("configured title not applied")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	env := newTestEnv(t)
	other := env.write(t, "other.graphml", forestDoc)
	badCfg := env.write(t, "bad.toml", "[render]\nheight = 12\n")

	tests := []struct {
		name     string
		args     []string
		code     errors.Code
		exitCode int
	}{
		{"missing input file", []string{"render", filepath.Join(env.dir, "missing.graphml")}, errors.ErrCodeFileNotFound, 2},
		{"no input", []string{"render"}, errors.ErrCodeInvalidInput, 1},
		{"input given twice", []string{"render", other, "--in", "x.graphml"}, errors.ErrCodeInvalidInput, 1},
		{"bad snapshot format", []string{"render", other, "--snapshot", "gif", "-o", filepath.Join(env.dir, "g.html")}, errors.ErrCodeInvalidFormat, 1},
		{"missing config", []string{"render", other, "--config", filepath.Join(env.dir, "none.toml")}, errors.ErrCodeFileNotFound, 2},
		{"bad config", []string{"render", other, "--config", badCfg}, errors.ErrCodeInvalidConfig, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.run(tt.args...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want code %s", err, tt.code)
			}
			if got := errors.ExitCode(err); got != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exitCode)
			}
		})
	}
}

func TestResolveInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		flag    string
		want    string
		wantErr bool
	}{
		{"positional", []string{"a.graphml"}, "", "a.graphml", false},
		{"flag", nil, "b.graphml", "b.graphml", false},
		{"both agree", []string{"a.graphml"}, "a.graphml", "a.graphml", false},
		{"both differ", []string{"a.graphml"}, "b.graphml", "", true},
		{"neither", nil, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveInput(tt.args, tt.flag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveInput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInspectCommand(t *testing.T) {
	env := newTestEnv(t)
	input := env.write(t, "forest.graphml", forestDoc)

	if err := env.run("inspect", input, "--no-cache"); err != nil {
		t.Fatalf("inspect error: %v", err)
	}

	out := env.stdout.String()
	for _, want := range []string{"nodes", "edges", "Forest", "Site", "#4C78A8"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInjectCommand(t *testing.T) {
	env := newTestEnv(t)
	page := env.write(t, "page.html", "<html><body><canvas></canvas></body></html>")

	if err := env.run("inject", page); err != nil {
		t.Fatalf("inject error: %v", err)
	}
	first, err := os.ReadFile(page)
	if err != nil {
		t.Fatal(err)
	}
	if !export.Injected(first) {
		t.Fatal("toolbar not injected")
	}

	env.stdout.Reset()
	if err := env.run("inject", page); err != nil {
		t.Fatalf("second inject error: %v", err)
	}
	second, err := os.ReadFile(page)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second inject modified an injected page")
	}
	if !strings.Contains(env.stdout.String(), "already has an export toolbar") {
		t.Errorf("stdout = %q, want warning", env.stdout.String())
	}
}

func TestInjectCommandErrors(t *testing.T) {
	env := newTestEnv(t)
	noBody := env.write(t, "fragment.html", "<div>no body</div>")

	err := env.run("inject", noBody)
	if !errors.Is(err, errors.ErrCodeInjection) {
		t.Errorf("inject without body = %v, want INJECTION_ERROR", err)
	}
	data, _ := os.ReadFile(noBody)
	if string(data) != "<div>no body</div>" {
		t.Error("failed injection modified the file")
	}

	err = env.run("inject", filepath.Join(env.dir, "missing.html"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("inject missing file = %v, want FILE_NOT_FOUND", err)
	}
}

func TestCacheCommands(t *testing.T) {
	env := newTestEnv(t)
	input := env.write(t, "forest.graphml", forestDoc)

	if err := env.run("render", input, "-o", filepath.Join(env.dir, "graph.html")); err != nil {
		t.Fatalf("render error: %v", err)
	}

	env.stdout.Reset()
	if err := env.run("cache", "info"); err != nil {
		t.Fatalf("cache info error: %v", err)
	}
	if !strings.Contains(env.stdout.String(), "file") {
		t.Errorf("cache info = %q, want file backend", env.stdout.String())
	}

	env.stdout.Reset()
	if err := env.run("cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(env.stdout.String(), "Cleared 1 cached entries") {
		t.Errorf("cache clear = %q", env.stdout.String())
	}

	env.stdout.Reset()
	if err := env.run("cache", "clear"); err != nil {
		t.Fatalf("second cache clear error: %v", err)
	}
	if !strings.Contains(env.stdout.String(), "Cache is empty") {
		t.Errorf("second cache clear = %q", env.stdout.String())
	}
}

func TestCachePath(t *testing.T) {
	env := newTestEnv(t)
	if err := env.run("cache", "path"); err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	want := filepath.Join(env.dir, "cache", "graphview")
	if strings.TrimSpace(env.stdout.String()) != want {
		t.Errorf("cache path = %q, want %q", env.stdout.String(), want)
	}
}

func TestVerboseRegistersHooks(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(observability.Reset)
	input := env.write(t, "forest.graphml", forestDoc)

	if err := env.run("-v", "render", input, "-o", filepath.Join(env.dir, "graph.html"), "--no-cache"); err != nil {
		t.Fatalf("render error: %v", err)
	}

	logs := env.stderr.String()
	for _, want := range []string{"stage complete", "stage=render", "graph built"} {
		if !strings.Contains(logs, want) {
			t.Errorf("verbose logs missing %q:\n%s", want, logs)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			env := newTestEnv(t)
			if err := env.run("completion", shell); err != nil {
				t.Fatalf("completion %s error: %v", shell, err)
			}
			if !strings.Contains(env.stdout.String(), "graphview") {
				t.Errorf("completion %s output does not mention graphview", shell)
			}
		})
	}

	env := newTestEnv(t)
	if err := env.run("completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
