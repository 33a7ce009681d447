package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/dove/pkg/buildinfo"
	derr "github.com/matzehuels/dove/pkg/errors"
	"github.com/matzehuels/dove/pkg/manifest"
	"github.com/matzehuels/dove/pkg/metadata"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	c := New(&stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "demo")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRoot_MetadataJSON(t *testing.T) {
	dir := writeProject(t, demoManifest)

	for _, flag := range []string{"--json", "-j"} {
		t.Run(flag, func(t *testing.T) {
			stdout, _, err := execute(t, "--project-dir", dir, "metadata", flag)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if err := metadata.Validate([]byte(stdout)); err != nil {
				t.Errorf("output does not match schema: %v\n%s", err, stdout)
			}
			if !strings.Contains(stdout, `"local_dependencies": [`) {
				t.Errorf("expected JSON metadata, got:\n%s", stdout)
			}
		})
	}
}

func TestRoot_MetadataTOML(t *testing.T) {
	dir := writeProject(t, demoManifest)

	stdout, _, err := execute(t, "-p", dir, "metadata")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(stdout), "[package]") {
		t.Errorf("expected TOML manifest, got:\n%s", stdout)
	}
	if n := strings.Count(stdout, "[[package.dependencies]]"); n != 2 {
		t.Errorf("dependency entries = %d, want 2:\n%s", n, stdout)
	}
}

func TestRoot_ProjectDirFromEnv(t *testing.T) {
	dir := writeProject(t, demoManifest)
	t.Setenv("DOVE_PROJECT_DIR", dir)

	stdout, _, err := execute(t, "metadata", "-j")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(stdout, `"name": "demo"`) {
		t.Errorf("expected metadata of %s, got:\n%s", dir, stdout)
	}
}

func TestRoot_MissingManifest(t *testing.T) {
	stdout, _, err := execute(t, "-p", t.TempDir(), "metadata", "--json")
	if !derr.Is(err, derr.ErrCodeFileNotFound) {
		t.Errorf("execute error = %v, want %s", err, derr.ErrCodeFileNotFound)
	}
	if stdout != "" {
		t.Errorf("nothing should be written on failure, got:\n%s", stdout)
	}
}

func TestRoot_Verbose(t *testing.T) {
	dir := writeProject(t, demoManifest)

	stdout, stderr, err := execute(t, "-v", "-p", dir, "metadata")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(stderr, "Loading manifest") {
		t.Errorf("expected debug log on stderr, got:\n%s", stderr)
	}
	if strings.Contains(stdout, "Loading manifest") {
		t.Error("logs must not be written to stdout")
	}
}

func TestBindFlags(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	flags := c.RootCommand().PersistentFlags()

	if err := bindFlags(c.config, flags, keyVerbose, keyProjectDir); err != nil {
		t.Fatalf("bindFlags failed: %v", err)
	}
	if err := flags.Set(keyProjectDir, "elsewhere"); err != nil {
		t.Fatal(err)
	}
	if got := c.config.GetString(keyProjectDir); got != "elsewhere" {
		t.Errorf("%s = %q, want elsewhere", keyProjectDir, got)
	}

	err := bindFlags(c.config, flags, "no-such-flag")
	if !derr.Is(err, derr.ErrCodeInternal) {
		t.Errorf("bindFlags error = %v, want %s", err, derr.ErrCodeInternal)
	}
}

func TestRoot_MetadataRejectsArgs(t *testing.T) {
	dir := writeProject(t, demoManifest)

	if _, _, err := execute(t, "-p", dir, "metadata", "extra"); err == nil {
		t.Error("metadata should reject positional arguments")
	}
}

func TestRoot_Version(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(stdout, buildinfo.Version) {
		t.Errorf("version output %q should contain %q", stdout, buildinfo.Version)
	}
}

func TestRoot_Completion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := execute(t, "completion", shell)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if !strings.Contains(stdout, appName) {
				t.Errorf("completion script should mention %s", appName)
			}
		})
	}
}
