package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveWithoutFile(t *testing.T) {
	dir := t.TempDir()
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := Default()
	want.Root = dir
	if *got != *want {
		t.Errorf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
version: 1.2
layout:
  snap: false
  unbounded_warning: false
text:
  size: 13
  measurer: Cell
debug:
  verbose_errors: true
`)
	writeFile(t, dir, "go.mod", "module example.com/app\n\ngo 1.24\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Version != "v1.2.0" {
		t.Errorf("Version = %q", got.Version)
	}
	if got.Snap || got.UnboundedWarning {
		t.Error("layout flags should be disabled")
	}
	if got.TextSize != 13 || got.Measurer != MeasurerCell || !got.VerboseErrors {
		t.Errorf("resolved = %+v", got)
	}
	if got.ModulePath != "example.com/app" {
		t.Errorf("ModulePath = %q", got.ModulePath)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad version", "version: banana\n", "not a semantic version"},
		{"future major", "version: v2.0.0\n", "unsupported version"},
		{"bad measurer", "text:\n  measurer: gpu\n", "invalid text.measurer"},
		{"negative size", "text:\n  size: -1\n", "invalid text.size"},
		{"unknown key", "layout:\n  snapp: true\n", "failed to parse"},
		{"bad yaml", "layout: [\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if _, err := cfg.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, FileName, "version: v1.0.0\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("root = %q, want %q", got, want)
	}
}
