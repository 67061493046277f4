package main_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "commentstyle-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "commentstyle")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	abs, err := filepath.Abs("../../testdata/comments")
	require.NoError(t, err)
	return abs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

const goConfig = `- paths:
    - include: "*.go"
  comment_markers:
    line: "//"
    block: "/*"
`

func TestE2E_CleanFile(t *testing.T) {
	cfg := writeConfig(t, `- paths:
    - include: "clean.go"
  comment_markers:
    line: "//"
`)
	out, errOut, code := run(t, "check", cfg, "--root", fixtureDir(t))
	assert.Equal(t, 0, code, errOut)
	assert.Empty(t, out)
}

func TestE2E_Violations(t *testing.T) {
	out, _, code := run(t, "check", writeConfig(t, goConfig), "--root", fixtureDir(t))
	assert.Equal(t, 1, code, "should exit 1 when violations are found")
	assert.Contains(t, out, "sample.go:5: (block_comment) Block comment:")
	assert.Contains(t, out, "sample.go:41: (trailing_comment) Comments must be on their own line:")
	assert.NotContains(t, out, "clean.go")
}

func TestE2E_Idempotent(t *testing.T) {
	cfg := writeConfig(t, goConfig)
	first, _, firstCode := run(t, "check", cfg, "--root", fixtureDir(t))
	second, _, secondCode := run(t, "check", cfg, "--root", fixtureDir(t), "--jobs", "4")
	assert.Equal(t, firstCode, secondCode)
	assert.Equal(t, first, second)
}

func TestE2E_AllowListed(t *testing.T) {
	cfg := writeConfig(t, goConfig+`  allow:
    - block_comment
    - no_leading_space
    - starts_with_lowercase
    - no_ending_punctuation
    - no_section_ending_punctuation
    - block_starts_empty
    - block_ends_empty
    - starts_with_lowercase_after_tag
    - no_leading_space_after_tag
    - trailing_comment
`)
	out, _, code := run(t, "check", cfg, "--root", fixtureDir(t))
	assert.Equal(t, 0, code, "allow-listed violations keep the exit status clean")
	assert.Empty(t, out)
}

func TestE2E_ConfigError(t *testing.T) {
	cfg := writeConfig(t, `- paths:
    - include: "*.go"
      exclude: "vendor/**"
  comment_markers:
    line: "//"
`)
	out, errOut, code := run(t, "check", cfg, "--root", fixtureDir(t))
	assert.Equal(t, 1, code)
	assert.Empty(t, out, "no violations are reported when the config is invalid")
	assert.Contains(t, errOut, "contains both 'include' and 'exclude'")
}

func TestE2E_JSON(t *testing.T) {
	out, _, code := run(t, "check", writeConfig(t, goConfig), "--root", fixtureDir(t), "--json")
	assert.Equal(t, 1, code)

	var res domain.CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Clean)
	assert.Len(t, res.Files, 2)
	assert.Equal(t, 14, res.ViolationCount())
}

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "commentstyle")
}
