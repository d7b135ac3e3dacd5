package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pendergraft/seiconf/internal/assembler"
	"github.com/pendergraft/seiconf/internal/config"
	"github.com/pendergraft/seiconf/internal/render"
)

var managedVars = []string{
	"PRIVATE_KEY", "SEITRACE_KEY", "LOG_LEVEL", "LOG_FORMAT",
	"SEICONF_FORMAT", "SEICONF_OUTPUT", "SEICONF_STRICT", "SEICONF_METRICS_FILE",
}

func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range managedVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd("test")

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func TestRenderDefaultNoCredentials(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{nil, {"render"}} {
		stdout, _, err := execute(t, "", args...)
		require.NoError(t, err)

		doc := decodeJSON(t, stdout)
		assert.Contains(t, doc, "solidity")
		assert.NotContains(t, doc, "networks")
		assert.NotContains(t, doc, "etherscan")
	}
}

func TestRenderWithPrivateKey(t *testing.T) {
	isolate(t)
	t.Setenv("PRIVATE_KEY", "0xabc")

	stdout, _, err := execute(t, "", "render")
	require.NoError(t, err)

	doc := decodeJSON(t, stdout)
	networks := doc["networks"].(map[string]any)
	pacific := networks["sei_pacific_1"].(map[string]any)
	assert.Equal(t, float64(1329), pacific["chainId"])
	assert.Equal(t, []any{"0xabc"}, pacific["accounts"])
	assert.NotContains(t, doc, "etherscan")
}

func TestRenderVerificationWithoutNetwork(t *testing.T) {
	isolate(t)
	t.Setenv("SEITRACE_KEY", "key1")

	t.Run("warns by default", func(t *testing.T) {
		stdout, stderr, err := execute(t, "", "render")
		require.NoError(t, err)

		doc := decodeJSON(t, stdout)
		assert.NotContains(t, doc, "networks")
		assert.Contains(t, doc, "etherscan")
		assert.Contains(t, stderr, "verification entries have no matching network")
	})

	t.Run("strict flag rejects", func(t *testing.T) {
		_, _, err := execute(t, "", "render", "--strict")
		require.Error(t, err)
		assert.True(t, errors.Is(err, assembler.ErrVerificationWithoutNetwork))
	})

	t.Run("strict from environment", func(t *testing.T) {
		t.Setenv("SEICONF_STRICT", "true")
		_, _, err := execute(t, "", "render")
		assert.True(t, errors.Is(err, assembler.ErrVerificationWithoutNetwork))
	})
}

func TestRenderToFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("PRIVATE_KEY", "0xabc")

	stdout, _, err := execute(t, "", "render", "-o", "hardhat.config.ts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✅ Wrote hardhat.config.ts (ts, status: partial)")
	assert.Contains(t, stdout, "etherscan skipped: SEITRACE_KEY not set")

	path := filepath.Join(dir, "hardhat.config.ts")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "const config: HardhatUserConfig = {")
	assert.Contains(t, string(data), `"sei_pacific_1"`)
	assert.Contains(t, string(data), "export default config;")
}

func TestRenderFormatFlag(t *testing.T) {
	isolate(t)
	t.Setenv("PRIVATE_KEY", "0xabc")

	stdout, _, err := execute(t, "", "render", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Contains(t, doc, "networks")

	_, _, err = execute(t, "", "render", "--format", "xml")
	assert.True(t, errors.Is(err, render.ErrUnknownFormat))
}

func TestRenderPromptKey(t *testing.T) {
	isolate(t)

	stdout, stderr, err := execute(t, "0xprompted\n", "render", "--prompt-key")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Enter PRIVATE_KEY:")

	doc := decodeJSON(t, stdout)
	pacific := doc["networks"].(map[string]any)["sei_pacific_1"].(map[string]any)
	assert.Equal(t, []any{"0xprompted"}, pacific["accounts"])

	_, _, err = execute(t, "\n", "render", "--prompt-key")
	assert.Error(t, err)
}

func TestRenderMetricsFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("PRIVATE_KEY", "0xabc")
	metricsPath := filepath.Join(dir, "seiconf.prom")

	_, _, err := execute(t, "", "render", "--metrics-file", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `seiconf_assembly_total{service="seiconf",status="partial"} 1`)
	assert.Contains(t, string(data), `seiconf_section_skipped_total{section="etherscan",service="seiconf"} 1`)
	assert.Contains(t, string(data), `seiconf_networks_emitted{service="seiconf"} 3`)
}

func TestShow(t *testing.T) {
	isolate(t)
	t.Setenv("PRIVATE_KEY", "0x0123456789abcdef0123456789abcdef")

	stdout, _, err := execute(t, "", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Compiler: solc 0.8.25 (optimizer: 200 runs)")
	assert.Contains(t, stdout, "Status:   partial")
	assert.Contains(t, stdout, "PRIVATE_KEY=0x0123...cdef")
	assert.Contains(t, stdout, "SEITRACE_KEY=(not set)")
	assert.Contains(t, stdout, "sei_arctic_1, sei_atlantic_2, sei_pacific_1")
	assert.Contains(t, stdout, "set SEITRACE_KEY to enable")
	assert.NotContains(t, stdout, "0x0123456789abcdef0123456789abcdef")
}

func TestShowWarnings(t *testing.T) {
	isolate(t)
	t.Setenv("SEITRACE_KEY", "key1")

	stdout, _, err := execute(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Warnings:")
	assert.Contains(t, stdout, "set PRIVATE_KEY to enable")

	_, _, err = execute(t, "", "show", "--strict")
	assert.Error(t, err)
}

func TestNetworks(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "", "networks")
	require.NoError(t, err)

	assert.Contains(t, stdout, "NAME")
	for _, want := range []string{"sei_arctic_1", "713715", "sei_atlantic_2", "1328", "sei_pacific_1", "1329", "https://seitrace.com/pacific-1/api"} {
		assert.Contains(t, stdout, want)
	}
}

func TestConfigInit(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := execute(t, "", "config", "init", "--format", "yaml", "--output", "out/hardhat.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created seiconf.toml")

	_, _, err = execute(t, "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The project file drives the next render
	t.Setenv("PRIVATE_KEY", "0xabc")
	_, _, err = execute(t, "", "render")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "hardhat.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "sei_pacific_1:")

	_, _, err = execute(t, "", "config", "init", "--force", "--format", "xml")
	assert.True(t, errors.Is(err, render.ErrUnknownFormat))
}

func TestConfigInitEscapesValues(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"backslashes", `out\hardhat.config.json`},
		{"double quote", `out/"quoted".json`},
		{"windows path", `C:\Users\dev\hardhat.config.ts`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, _, err := execute(t, "", "config", "init", "--format", "ts", "--output", tt.output)
			require.NoError(t, err)

			cfg, path, err := config.Load(config.LoadOptions{})
			require.NoError(t, err)
			assert.Equal(t, config.DefaultProjectFile, path)
			assert.Equal(t, tt.output, cfg.Output.Path)
			assert.Equal(t, "ts", cfg.Output.Format)
			assert.False(t, cfg.Strict)
			assert.Equal(t, "warn", cfg.Logging.Level)
		})
	}
}

func TestConfigShow(t *testing.T) {
	isolate(t)
	t.Setenv("SEITRACE_KEY", "seitrace-0123456789")

	stdout, _, err := execute(t, "", "config", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "PRIVATE_KEY=(not set)")
	assert.Contains(t, stdout, "SEITRACE_KEY=seitra...6789")
	assert.Contains(t, stdout, "(not found)")
	assert.Contains(t, stdout, "Format:  json")
	assert.Contains(t, stdout, "Output:  (stdout)")
}

func TestExplicitEnvFile(t *testing.T) {
	dir := isolate(t)
	envPath := filepath.Join(dir, "deploy.env")
	require.NoError(t, os.WriteFile(envPath, []byte("PRIVATE_KEY=0xfromfile\n"), 0600))

	stdout, _, err := execute(t, "", "--env-file", envPath, "render")
	require.NoError(t, err)
	assert.Contains(t, stdout, "0xfromfile")

	_, _, err = execute(t, "", "--env-file", filepath.Join(dir, "missing.env"), "render")
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestLogFormatFlag(t *testing.T) {
	isolate(t)

	_, stderr, err := execute(t, "", "--log-level", "debug", "--log-format", "json", "render")
	require.NoError(t, err)

	line := strings.SplitN(strings.TrimSpace(stderr), "\n", 2)[0]
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "INFO", entry["level"])
}

func TestPromptSecretFromReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"line", "0xabc\n", "0xabc", false},
		{"surrounding whitespace", "  0xabc \t\r\n", "0xabc", false},
		{"eof without newline", "0xabc", "0xabc", false},
		{"only first line", "0xabc\n0xdef\n", "0xabc", false},
		{"empty line", "\n", "", true},
		{"blank line", "   \n", "", true},
		{"no input", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			var stderr bytes.Buffer
			cmd.SetIn(strings.NewReader(tt.input))
			cmd.SetErr(&stderr)

			got, err := promptSecret(cmd, "PRIVATE_KEY: ")
			assert.Equal(t, "PRIVATE_KEY: ", stderr.String())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot be empty")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
