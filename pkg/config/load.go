package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/disnet/flint-note-sub011/pkg/errors"
)

// EnvPrefix is the prefix for configuration environment variables.
// FLINT_NOTE_TEMPLATES_DIR maps to templates.dir, and so on.
const EnvPrefix = "FLINT_NOTE_"

// Load builds the effective configuration. Layers are applied in order:
// embedded defaults, then the user config file (when it exists), then
// FLINT_NOTE_* environment variables.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(embeddedProvider(defaultConfig), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	// A missing config file is not an error, only a parse failure is
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile)
			}
		}
	}

	// FLINT_NOTE_VAULT_PATH becomes vault.path, and so on
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Default returns the configuration built from embedded defaults and
// environment variables only, ignoring any config file.
func Default() (*Config, error) {
	return Load("")
}
