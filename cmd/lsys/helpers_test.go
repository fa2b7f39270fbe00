package main

import (
	"os"
	"path/filepath"
	"testing"

	"lsys/internal/project"
)

func TestResolveRequestExample(t *testing.T) {
	req, err := resolveRequest("koch-snowflake", "")
	if err != nil {
		t.Fatalf("resolveRequest: %v", err)
	}
	if req.Name != "koch-snowflake" || req.Generations != 5 {
		t.Fatalf("unexpected request: %+v", req)
	}

	if _, err := resolveRequest("no-such-example", ""); err == nil {
		t.Fatal("expected an error for an unknown example")
	}
}

func TestResolveRequestManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := "[system]\nname = \"demo\"\naxiom = \"F\"\nrules = [\"F ? F F\"]\niterations = 2\n"
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	req, err := resolveRequest("", dir)
	if err != nil {
		t.Fatalf("resolveRequest: %v", err)
	}
	if req.Name != "demo" || req.Generations != 2 || len(req.Config.Rules) != 1 {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestResolveRequestNoManifest(t *testing.T) {
	if _, err := resolveRequest("", t.TempDir()); err == nil {
		t.Fatal("expected an error without a manifest")
	}
}

func TestProjectName(t *testing.T) {
	if got := projectName("/tmp/garden"); got != "garden" {
		t.Fatalf("projectName = %q", got)
	}
	if got := projectName("/"); got != "lsys-project" {
		t.Fatalf("projectName = %q", got)
	}
}
