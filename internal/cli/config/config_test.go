package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the test into dir and restores the old working directory on
// cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Input)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultPrompt, cfg.REPL.Prompt)
	assert.Equal(t, DefaultHistoryFile, cfg.REPL.HistoryFile)
	assert.Equal(t, "", GetConfigFileUsed())
}

func TestLoadConfig_FromFile(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "typecast.yaml")
	content := `input: record.txt
output: markdown
format: csv
verbose: true
repl:
  prompt: "cast> "
  history_file: /tmp/history
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	cfg, err := LoadConfig(configPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "record.txt", cfg.Input)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "csv", cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "cast> ", cfg.REPL.Prompt)
	assert.Equal(t, "/tmp/history", cfg.REPL.HistoryFile)
	assert.Equal(t, configPath, GetConfigFileUsed())
}

func TestLoadConfig_FindsFileUpward(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "typecast.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: json\n"), 0600))

	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	chdir(t, nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "typecast.yaml", filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfig_EnvVars(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	os.Setenv("TYPECAST_OUTPUT", "text")
	os.Setenv("TYPECAST_REPL_PROMPT", ">> ")
	defer os.Unsetenv("TYPECAST_OUTPUT")
	defer os.Unsetenv("TYPECAST_REPL_PROMPT")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, ">> ", cfg.REPL.Prompt)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "typecast.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: markdown\n"), 0600))

	os.Setenv("TYPECAST_OUTPUT", "json")
	defer os.Unsetenv("TYPECAST_OUTPUT")

	cfg, err := LoadConfig(configPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "typecast.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: markdown\n"), 0600))

	os.Setenv("TYPECAST_OUTPUT", "text")
	defer os.Unsetenv("TYPECAST_OUTPUT")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	require.NoError(t, flags.Set("output", "json"))

	cfg, err := LoadConfig(configPath, flags)
	require.NoError(t, err)

	// Flags beat env vars and the config file.
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfig_UnchangedFlagIgnored(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	os.Setenv("TYPECAST_FORMAT", "csv")
	defer os.Unsetenv("TYPECAST_FORMAT")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "table", "")

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// The flag still holds its default, so the env var wins.
	assert.Equal(t, "csv", cfg.Format)
}

func TestLoadConfig_ExpandsEnvVarsInPaths(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "typecast.yaml")
	content := `input: ${TYPECAST_TEST_DIR}/record.txt
repl:
  history_file: ${TYPECAST_TEST_DIR}/history
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	os.Setenv("TYPECAST_TEST_DIR", "/data")
	defer os.Unsetenv("TYPECAST_TEST_DIR")

	cfg, err := LoadConfig(configPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "/data/record.txt", cfg.Input)
	assert.Equal(t, "/data/history", cfg.REPL.HistoryFile)
}

func TestLoadConfig_InvalidOutput(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "typecast.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: banana\n"), 0600))

	_, err := LoadConfig(configPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output mode")
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "typecast.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: xml\n"), 0600))

	_, err := LoadConfig(configPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid table format")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	ResetConfig()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestResetConfig(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	_, err := LoadConfig("", nil)
	require.NoError(t, err)
	require.NotNil(t, GetCurrentConfig())

	ResetConfig()
	assert.Nil(t, GetCurrentConfig())
	assert.Equal(t, "", GetConfigFileUsed())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty config", cfg: Config{}},
		{name: "all defaults", cfg: Config{OutputFormat: "auto", Format: "table"}},
		{name: "markdown alias", cfg: Config{OutputFormat: "md"}},
		{name: "bad output", cfg: Config{OutputFormat: "yaml"}, wantErr: true},
		{name: "bad format", cfg: Config{Format: "tsv"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateInput(t *testing.T) {
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "record.txt")
	require.NoError(t, os.WriteFile(existing, []byte("42\n"), 0600))

	cfg := Config{}
	assert.NoError(t, cfg.ValidateInput())

	cfg.Input = existing
	assert.NoError(t, cfg.ValidateInput())

	cfg.Input = filepath.Join(tmpDir, "absent.txt")
	err := cfg.ValidateInput()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file does not exist")
	assert.Contains(t, err.Error(), "Hint")
}

func TestGetLogger(t *testing.T) {
	// Without a logger in context a discard logger comes back.
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)

	// With one stored, the same instance comes back.
	want := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.WithValue(context.Background(), LoggerKey(), want)
	assert.Same(t, want, GetLogger(ctx))
}
