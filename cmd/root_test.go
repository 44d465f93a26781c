package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"environment", "dimensions", "screenshot", "click", "double-click", "move",
		"scroll", "type", "key", "keypress", "drag", "wait", "url", "apps",
		"active-window", "focus", "permissions", "cursor", "do", "serve",
	}
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, found[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Version(t *testing.T) {
	assert.NotEmpty(t, rootCmd.Version)
}

func TestFormat_JSON(t *testing.T) {
	useFakeComputer(t)

	out, err := run(t, "", "--format", "json", "environment")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, true, decoded["ok"])
	assert.Equal(t, "mac", decoded["environment"])
}

func TestFormat_Unsupported(t *testing.T) {
	useFakeComputer(t)

	_, err := run(t, "", "--format", "xml", "environment")
	assert.Error(t, err)
}

func TestConfigFile_FillsUnsetFlags(t *testing.T) {
	fakes := useFakeComputer(t)
	cfg := filepath.Join(t.TempDir(), "macos-computer.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("button: right\nformat: json\n"), 0o644))

	out, err := run(t, "", "--config", cfg, "click", "--x", "1", "--y", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"click 2,2 right x1"}, fakes.Input.Events)
	assert.Contains(t, out, `"button":"right"`)
}

func TestConfigFile_ExplicitFlagWins(t *testing.T) {
	fakes := useFakeComputer(t)
	cfg := filepath.Join(t.TempDir(), "macos-computer.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("button: right\n"), 0o644))

	_, err := run(t, "", "--config", cfg, "click", "--x", "1", "--y", "1", "--button", "middle")
	require.NoError(t, err)
	assert.Equal(t, []string{"click 2,2 middle x1"}, fakes.Input.Events)
}

func TestConfigFile_Missing(t *testing.T) {
	useFakeComputer(t)

	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "environment")
	assert.Error(t, err)
}
