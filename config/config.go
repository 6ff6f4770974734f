// Package config loads oasmeta settings from a YAML file and the environment.
//
// Every setting can be overridden by an environment variable named after its key
// with the OASMETA_ prefix, for example OASMETA_REF_NAME_CASE=snake.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/erraggy/oasmeta/introspect"
	"github.com/erraggy/oasmeta/oaserrors"
	"github.com/erraggy/oasmeta/oaslog"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "OASMETA"

// DefaultFileName is the settings file looked up in the working directory when
// Load is given no path.
const DefaultFileName = "oasmeta"

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Settings holds the global policy settings.
type Settings struct {
	// CoerceDecimalToString is the global decimal policy used for decimal fields
	// that carry no setting of their own.
	CoerceDecimalToString bool `mapstructure:"coerce_decimal_to_string"`
	// RefNameCase is the casing applied to derived reference names.
	RefNameCase string `mapstructure:"ref_name_case"`
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is console or json.
	LogFormat string `mapstructure:"log_format"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		CoerceDecimalToString: true,
		RefNameCase:           string(introspect.RefNameCaseDefault),
		LogLevel:              "warn",
		LogFormat:             LogFormatConsole,
	}
}

// Load reads settings from path, or from oasmeta.yaml in the working directory
// when path is empty. A missing file yields the defaults. Environment variables
// take precedence over the file.
func Load(path string) (*Settings, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("coerce_decimal_to_string", def.CoerceDecimalToString)
	v.SetDefault("ref_name_case", def.RefNameCase)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultFileName)
		v.AddConfigPath(".")
	}
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, &oaserrors.ConfigError{Option: "config file", Value: v.ConfigFileUsed(), Message: "failed to read settings", Cause: err}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, &oaserrors.ConfigError{Option: "config file", Value: v.ConfigFileUsed(), Message: "failed to decode settings", Cause: err}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every setting and returns the first invalid one as a
// *oaserrors.ConfigError.
func (s *Settings) Validate() error {
	if _, err := introspect.ParseRefNameCase(s.RefNameCase); err != nil {
		return err
	}
	if _, err := s.level(); err != nil {
		return err
	}
	switch s.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return &oaserrors.ConfigError{
			Option:  "log_format",
			Value:   s.LogFormat,
			Message: fmt.Sprintf("must be %s or %s", LogFormatConsole, LogFormatJSON),
		}
	}
	return nil
}

func (s *Settings) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return lvl, &oaserrors.ConfigError{Option: "log_level", Value: s.LogLevel, Cause: err}
	}
	return lvl, nil
}

// InspectorOptions returns the introspect options matching the settings.
// Invalid values fall back to the inspector defaults.
func (s *Settings) InspectorOptions() []introspect.Option {
	opts := []introspect.Option{introspect.WithCoerceDecimalToString(s.CoerceDecimalToString)}
	if c, err := introspect.ParseRefNameCase(s.RefNameCase); err == nil {
		opts = append(opts, introspect.WithRefNameCase(c))
	}
	return opts
}

// NewLogger builds a zap-backed logger honoring LogLevel and LogFormat. The
// caller should Sync it before exiting.
func (s *Settings) NewLogger() (*oaslog.ZapAdapter, error) {
	lvl, err := s.level()
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	switch s.LogFormat {
	case LogFormatJSON:
		cfg.Encoding = LogFormatJSON
	default:
		cfg.Encoding = LogFormatConsole
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config: failed to build logger: %w", err)
	}
	return oaslog.NewZapAdapter(logger), nil
}
