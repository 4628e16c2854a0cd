// Package testutil provides test helper utilities for recruit tests.
package testutil

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tezosjh/recruit/internal/stubhook"
)

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// StubWebhook starts an in-memory webhook and returns it with its URL.
// The server is closed when the test finishes.
func StubWebhook(t *testing.T) (*stubhook.Server, string) {
	t.Helper()
	stub := stubhook.New(nil)
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return stub, srv.URL
}

// ApplicantAnswers returns raw inputs for one complete application, in
// question order. The team answer "1,3,9,0" resolves to
// "Content Team, Tech Team".
func ApplicantAnswers() []string {
	return []string{
		"Ada Lovelace",
		"+91 98765 43210",
		"B.Tech CSE",
		"EN2024001",
		"2nd Year, 4th Semester",
		"1,3,9,0",
		"null",
	}
}

// PartialConfig returns project files holding a config that only sets the
// webhook URL.
func PartialConfig(url string) map[string]string {
	return map[string]string{
		".recruit/config.yaml": "version: 1\nwebhook:\n  url: " + url + "\n",
	}
}
