package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rolodex/internal/script"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

const sampleScript = `steps:
  - op: add-record
    name: John
    phones: ["1234567890", "5555555555"]
  - op: add-record
    name: Jane
    phones: ["9876543210", "5555555555"]
  - op: remove-phone
    name: John
    phone: "1234567890"
`

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command in-process with an isolated config dir.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("ROLODEX_CONFIG_DIR", t.TempDir())

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "rolodex v")
	assert.Contains(t, res.stdout, modulePath)
}

func TestDemo(t *testing.T) {
	res := run(t, "", "demo")
	require.NoError(t, res.err)

	want := "Contact name: John, phones: 1234567890; 5555555555\n" +
		"Contact name: Jane, phones: 9876543210\n" +
		"Contact name: John, phones: 1112223333; 5555555555\n" +
		"John: 5555555555\n"
	assert.Equal(t, want, res.stdout)
}

func TestDemoDebugLogging(t *testing.T) {
	res := run(t, "", "demo", "--log-level", "debug")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "apply step")
	assert.Contains(t, res.stderr, "op=edit-phone")
}

func TestApplyFromFile(t *testing.T) {
	res := run(t, "", "apply", writeScript(t, sampleScript))
	require.NoError(t, res.err)
	assert.Equal(t,
		"Contact name: John, phones: 5555555555\nContact name: Jane, phones: 9876543210; 5555555555\n",
		res.stdout)
}

func TestApplyFromStdinJSON(t *testing.T) {
	res := run(t, sampleScript, "apply", "-", "--json")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	var first struct {
		Name   string   `json:"name"`
		Phones []string `json:"phones"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "John", first.Name)
	assert.Equal(t, []string{"5555555555"}, first.Phones)
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantErr  error
		wantCode int
	}{
		{
			name:     "invalid phone",
			script:   "steps:\n  - op: add-record\n    name: John\n    phones: [\"123\"]\n",
			wantErr:  types.ErrInvalidFormat,
			wantCode: exitUserError,
		},
		{
			name:     "duplicate phone",
			script:   "steps:\n  - op: add-record\n    name: John\n    phones: [\"1234567890\", \"1234567890\"]\n",
			wantErr:  types.ErrAlreadyExists,
			wantCode: exitUserError,
		},
		{
			name:     "delete missing",
			script:   "steps:\n  - op: delete\n    name: Jane\n",
			wantErr:  types.ErrNotFound,
			wantCode: exitUserError,
		},
		{
			name:     "unknown op",
			script:   "steps:\n  - op: merge\n",
			wantErr:  script.ErrUnknownOp,
			wantCode: exitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.script, "apply", "-")
			assert.ErrorIs(t, res.err, tt.wantErr)
			assert.Equal(t, tt.wantCode, exitCode(res.err))
		})
	}
}

func TestApplyMissingFile(t *testing.T) {
	res := run(t, "", "apply", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, res.err)
	assert.Equal(t, exitSysError, exitCode(res.err))
}

func TestExport(t *testing.T) {
	input := sampleScript + "  - op: show\n"
	res := run(t, input, "export", "-")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2, "show output must not leak into the export")
	assert.Contains(t, lines[0], `"name":"John"`)
	assert.Contains(t, lines[1], `"name":"Jane"`)
}

func TestOwners(t *testing.T) {
	path := writeScript(t, sampleScript)

	res := run(t, "", "owners", path, "5555555555")
	require.NoError(t, res.err)
	assert.Equal(t, "John\nJane\n", res.stdout)

	res = run(t, "", "owners", path, "1234567890")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	res = run(t, "", "owners", path, "9876543210", "--json")
	require.NoError(t, res.err)
	assert.JSONEq(t, `["Jane"]`, res.stdout)

	res = run(t, "", "owners", path, "12")
	assert.ErrorIs(t, res.err, types.ErrInvalidFormat)
}

func TestInitWritesConfigOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	res := run(t, "", "init", "--config-dir", dir)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "wrote")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	var cf configFile
	require.NoError(t, yaml.Unmarshal(data, &cf))
	assert.Equal(t, types.LogLevelWarn, cf.Log.Level)
	assert.Equal(t, types.FormatText, cf.Log.Format)
	assert.Equal(t, types.FormatText, cf.Output)

	res = run(t, "", "init", "--config-dir", dir)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "already exists")
}

func TestConfigFileSelectsOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: json\n"), 0o644))

	res := run(t, sampleScript, "apply", "-", "--config-dir", dir)
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "{"), "expected JSON Lines, got %q", res.stdout)
}

func TestConfigBadValue(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: loud\n"), 0o644))

	res := run(t, "", "demo", "--config-dir", dir)
	assert.ErrorIs(t, res.err, types.ErrLogLevelUnknown)
	assert.Equal(t, exitUserError, exitCode(res.err))
}

func TestFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: loud\n"), 0o644))

	res := run(t, "", "demo", "--config-dir", dir, "--log-level", "info")
	require.NoError(t, res.err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(types.ErrNotFound))
	assert.Equal(t, exitSysError, exitCode(errors.New("disk on fire")))
}
