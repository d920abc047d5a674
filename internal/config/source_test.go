// internal/config/source_test.go
//
// Unit-tests for the Source Resolver.
//
// Covered behaviours:
//
//   • File layering: later file overrides earlier for the same key.
//   • Env overlay: GOODDATA_FLIGHT_ variables override every file.
//   • Path pre-checks: missing file and directory both fail before
//     any parsing, naming the offending path.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestResolve_FileLayering(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "server:\n  listen_port: 100\n  listen_host: first\n")
	b := writeFile(t, dir, "b.yaml", "server:\n  listen_port: 200\n")

	raw, err := Resolve(a, b)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := raw.Get("server.listen_port"); got != 200 {
		t.Fatalf("listen_port = %v, want 200 (file B overrides file A)", got)
	}
	if got := raw.Get("server.listen_host"); got != "first" {
		t.Fatalf("listen_host = %v, want value from file A", got)
	}
}

func TestResolve_EnvOverridesFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "server:\n  listen_port: 100\n")
	t.Setenv("GOODDATA_FLIGHT_SERVER__LISTEN_PORT", "300")

	raw, err := Resolve(a)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// Env values are strings until the rule cast runs.
	if got := raw.Get("server.listen_port"); got != "300" {
		t.Fatalf("listen_port = %v (%T), want env override \"300\"", got, got)
	}
}

func TestResolve_NoFiles(t *testing.T) {
	raw, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve with no files: %v", err)
	}
	if raw.Has("server.listen_port") {
		t.Fatal("empty resolution should carry no keys")
	}
}

func TestResolve_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Resolve(missing)
	if err == nil {
		t.Fatal("expected a source error for a missing file")
	}
	if !strings.Contains(err.Error(), missing) || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("error %q should name the missing path", err)
	}
}

func TestResolve_DirectoryPath(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(dir)
	if err == nil {
		t.Fatal("expected a source error for a directory path")
	}
	if !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("error %q should say the path is a directory", err)
	}
}
