package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".evenflow"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for evenflow settings.
const envPrefix = "EVENFLOW"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load reads configuration from defaults, file, env vars and flags, in
// increasing priority. If configPath is empty the file is searched in CWD
// and $HOME; a missing file is not an error. flags maps config keys to
// command flags and may be nil.
func Load(configPath string, flags map[string]*pflag.Flag) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetDefault("solve.workers", DefaultWorkers)
	v.SetDefault("solve.format", DefaultFormat)
	v.SetDefault("solve.exhaustive", false)
	v.SetDefault("solve.metrics_file", "")

	v.SetDefault("generate.count", DefaultGenCount)
	v.SetDefault("generate.junctions", DefaultGenJunctions)
	v.SetDefault("generate.density", DefaultGenDensity)
	v.SetDefault("generate.seed", DefaultGenSeed)
	v.SetDefault("generate.min_weight", DefaultGenMinWeight)
	v.SetDefault("generate.max_weight", DefaultGenMaxWeight)
}
