package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocsCommandWritesStdout(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"docs"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(out.String(), "POST /api/evidence/submit") {
		t.Fatalf("reference is missing the evidence endpoint")
	}
}

func TestDocsCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "API.md")

	cmd := newRootCommand()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"docs", "--out", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("docs --out: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !strings.HasPrefix(string(body), "# Lawfully Illegal Master Hub API") {
		t.Fatalf("unexpected document start: %q", string(body[:40]))
	}
}
