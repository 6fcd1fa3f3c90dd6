package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldCommand(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := execute(t, "mycli", "--root", root)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Set up project mycli")
	for _, rel := range []string{"src", "tests"} {
		assert.DirExists(t, filepath.Join(root, "mycli", rel))
	}
	for _, rel := range []string{"src/__init__.py", "src/mycli.py", "readme.md", "requirements.txt", "setup.py"} {
		assert.FileExists(t, filepath.Join(root, "mycli", filepath.FromSlash(rel)))
	}

	setup := readFile(t, filepath.Join(root, "mycli", "setup.py"))
	assert.Contains(t, setup, "name='mycli'")
	assert.Contains(t, setup, "'mycli=src.mycli:main'")
	assert.Contains(t, setup, "version='0.1.0'")
}

func TestScaffoldCommandDefaultRoot(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	_, _, err := execute(t, "mycli")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "mycli", "setup.py"))
}

func TestScaffoldCommandDry(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := execute(t, "mycli", "--root", root, "--dry")
	require.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not create anything")
	assert.Contains(t, stdout, "Dry run")
	assert.Contains(t, stdout, "missing")
	assert.NotContains(t, stdout, "Wrote")
}

func TestScaffoldCommandVerbose(t *testing.T) {
	t.Run("verbose", func(t *testing.T) {
		_, stderr, err := execute(t, "mycli", "--root", t.TempDir(), "-v")
		require.NoError(t, err)
		assert.Contains(t, stderr, "op=touch")
		assert.Contains(t, stderr, "setting up project")
	})

	t.Run("quiet", func(t *testing.T) {
		_, stderr, err := execute(t, "mycli", "--root", t.TempDir())
		require.NoError(t, err)
		assert.NotContains(t, stderr, "op=touch")
		assert.Contains(t, stderr, "setting up project")
	})
}

func TestScaffoldCommandRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no name", []string{}},
		{"two names", []string{"one", "two"}},
		{"path traversal", []string{"../escape"}},
		{"bad version", []string{"mycli", "--package-version", "latest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			_, _, err := execute(t, append(tt.args, "--root", root)...)
			require.Error(t, err)

			entries, readErr := os.ReadDir(root)
			require.NoError(t, readErr)
			assert.Empty(t, entries)
		})
	}
}

func TestScaffoldCommandUsesConfigFile(t *testing.T) {
	root := t.TempDir()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("root: "+root+"\npackage_version: 4.5.6\n"), 0o644))

	_, _, err := execute(t, "mycli", "--config", cfg)
	require.NoError(t, err)

	setup := readFile(t, filepath.Join(root, "mycli", "setup.py"))
	assert.Contains(t, setup, "version='4.5.6'")
}

func TestScaffoldCommandRejectsNumericVersionInConfig(t *testing.T) {
	root := t.TempDir()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("package_version: 1.10\n"), 0o644))

	_, _, err := execute(t, "mycli", "--config", cfg, "--root", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/package_version")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be created from an invalid config")
}

func TestScaffoldCommandFlagOverridesConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("package_version: 4.5.6\n"), 0o644))
	root := t.TempDir()

	_, _, err := execute(t, "mycli", "--config", cfg, "--root", root, "--package-version", "9.0.0")
	require.NoError(t, err)

	setup := readFile(t, filepath.Join(root, "mycli", "setup.py"))
	assert.Contains(t, setup, "version='9.0.0'")
}

func TestScaffoldCommandDryFromEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PIP_SETUP_DRY", "true")

	_, _, err := execute(t, "mycli", "--root", root)
	require.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, buildVersion+"\n", stdout)

	stdout, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, buildVersion, info["version"])
	assert.Contains(t, info, "commit")
	assert.Contains(t, info, "date")

	stdout, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pip-setup version")
}

func TestConfigCommands(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "nested", "config.yaml")

	stdout, _, err := execute(t, "config", "set", "package_version", "1.2.3", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Set package_version = 1.2.3")

	stdout, _, err = execute(t, "config", "get", "package_version", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", stdout)

	stdout, _, err = execute(t, "config", "validate", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid")

	_, _, err = execute(t, "config", "set", "colour", "blue", "--config", cfg)
	assert.Error(t, err)
}

func TestConfigHelpListsEnvVars(t *testing.T) {
	stdout, _, err := execute(t, "config", "--help")
	require.NoError(t, err)
	for _, v := range []string{"PIP_SETUP_DRY", "PIP_SETUP_PACKAGE_VERSION", "PIP_SETUP_ROOT", "PIP_SETUP_VERBOSE"} {
		assert.Contains(t, stdout, v)
	}
	assert.Contains(t, stdout, "~/.pip-setup/config.yaml")
}

func TestConfigValidateReportsIssues(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("package_version: latest\ncolour: blue\n"), 0o644))

	stdout, _, err := execute(t, "config", "validate", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, stdout, "issue(s)")
	assert.Contains(t, stdout, "/package_version")
}

// ─── Test Helpers ──────────────────────────────────────────────────

// execute runs a fresh command tree with HOME pointed at a temp dir so the
// user's real config is never read.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
