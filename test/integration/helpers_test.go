//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holds .pip-setup/config.yaml
	RootDir    string // --root for scaffolding runs
	ConfigPath string
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so no run reads the developer's real config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		RootDir: t.TempDir(),
	}
	env.ConfigPath = filepath.Join(env.HomeDir, ".pip-setup", "config.yaml")

	t.Setenv("HOME", env.HomeDir)
	for _, key := range []string{"ROOT", "DRY", "VERBOSE", "PACKAGE_VERSION"} {
		t.Setenv("PIP_SETUP_"+key, "")
		os.Unsetenv("PIP_SETUP_" + key)
	}
	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s", path)
		return
	}
	if info.IsDir() {
		t.Errorf("expected file, got directory: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected directory, got file: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	if content := readFile(t, path); !strings.Contains(content, substr) {
		t.Errorf("file %s does not contain %q\n--- content ---\n%s", path, substr, content)
	}
}
