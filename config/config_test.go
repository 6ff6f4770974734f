package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmeta/introspect"
	"github.com/erraggy/oasmeta/oaserrors"
)

func writeSettings(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *s)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *s)
}

func TestLoad_File(t *testing.T) {
	path := writeSettings(t, t.TempDir(), "settings.yaml", `
coerce_decimal_to_string: false
ref_name_case: snake
log_level: debug
log_format: json
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.CoerceDecimalToString)
	assert.Equal(t, "snake", s.RefNameCase)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, LogFormatJSON, s.LogFormat)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "oasmeta.yaml", "ref_name_case: kebab\n")
	t.Chdir(dir)

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "kebab", s.RefNameCase)
	assert.True(t, s.CoerceDecimalToString, "unset keys keep their defaults")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeSettings(t, t.TempDir(), "settings.yaml", "ref_name_case: kebab\ncoerce_decimal_to_string: true\n")
	t.Setenv("OASMETA_REF_NAME_CASE", "camel")
	t.Setenv("OASMETA_COERCE_DECIMAL_TO_STRING", "false")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "camel", s.RefNameCase)
	assert.False(t, s.CoerceDecimalToString)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		option  string
	}{
		{"malformed yaml", "ref_name_case: [unclosed\n", "config file"},
		{"unknown casing", "ref_name_case: shouting\n", "ref_name_case"},
		{"unknown level", "log_level: loud\n", "log_level"},
		{"unknown format", "log_format: xml\n", "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, t.TempDir(), "settings.yaml", tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))

			var cfgErr *oaserrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}

func TestSettings_InspectorOptions(t *testing.T) {
	s := Settings{CoerceDecimalToString: false, RefNameCase: "snake", LogLevel: "warn", LogFormat: LogFormatConsole}
	in := introspect.NewInspector(s.InspectorOptions()...)
	assert.False(t, in.CoerceDecimalToString())
	assert.Equal(t, introspect.RefNameCaseSnake, in.RefNameCase())

	s.RefNameCase = "bogus"
	in = introspect.NewInspector(s.InspectorOptions()...)
	assert.Equal(t, introspect.RefNameCaseDefault, in.RefNameCase())
}

func TestSettings_NewLogger(t *testing.T) {
	for _, format := range []string{LogFormatConsole, LogFormatJSON} {
		t.Run(format, func(t *testing.T) {
			s := Default()
			s.LogFormat = format
			logger, err := s.NewLogger()
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.NotPanics(t, func() { logger.With("component", "test").Debug("suppressed at warn") })
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		s := Default()
		s.LogLevel = "loud"
		_, err := s.NewLogger()
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})
}
