package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasLumSuffix(t *testing.T) {
	cases := map[string]bool{
		"script.lum":     true,
		"script.txt":     false,
		"lum":            false,
		"a/b/script.lum": true,
	}
	for path, want := range cases {
		if got := hasLumSuffix(path); got != want {
			t.Errorf("hasLumSuffix(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestRunScriptRejectsWrongSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(path, []byte("write 1;"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := runScript(nil, []string{path}); err == nil {
		t.Fatal("expected an error for a non-.lum source file")
	}
}

func TestRunScriptExecutesValidSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.lum")
	if err := os.WriteFile(path, []byte("write 1 + 1;"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := runScript(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunScriptReportsMissingFile(t *testing.T) {
	if err := runScript(nil, []string{"/no/such/path.lum"}); err == nil {
		t.Fatal("expected an error for a missing source file")
	}
}
