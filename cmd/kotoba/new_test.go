package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/kotoba/content"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (t.Chdir requires Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestRunNewScaffoldsProject(t *testing.T) {
	chdir(t, t.TempDir())

	if err := runNew("github.com/user/mysite"); err != nil {
		t.Fatalf("runNew: %v", err)
	}

	gomod, err := os.ReadFile(filepath.Join("mysite", "go.mod"))
	if err != nil {
		t.Fatalf("read go.mod: %v", err)
	}
	if !strings.Contains(string(gomod), "module github.com/user/mysite") {
		t.Errorf("go.mod missing module path: %s", gomod)
	}

	// dotenv is renamed on the way out.
	if _, err := os.Stat(filepath.Join("mysite", ".env.example")); err != nil {
		t.Errorf(".env.example not created: %v", err)
	}

	// Every locale gets a content directory, not just the default.
	for _, locale := range content.Locales {
		dir := filepath.Join("mysite", "content", string(locale))
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("missing locale dir %s: %v", dir, err)
		}
	}
}

func TestRunNewSiteNameFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SITE_NAME", "Kotoba Nihongo")

	if err := runNew("mysite"); err != nil {
		t.Fatalf("runNew: %v", err)
	}

	eg, err := os.ReadFile(filepath.Join("mysite", ".env.example"))
	if err != nil {
		t.Fatalf("read .env.example: %v", err)
	}
	if !strings.Contains(string(eg), "SITE_NAME=Kotoba Nihongo") {
		t.Errorf("SITE_NAME env override not applied: %s", eg)
	}
}

func TestRunNewRefusesExistingDir(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.Mkdir("mysite", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := runNew("mysite"); err == nil {
		t.Fatal("expected an error for an existing directory")
	}
}

func TestToTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"my-site", "My Site"},
		{"my_blog_site", "My Blog Site"},
		{"site", "Site"},
	}
	for _, tt := range tests {
		if got := toTitle(tt.in); got != tt.want {
			t.Errorf("toTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
