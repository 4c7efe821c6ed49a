// Package config loads portfolio settings.
//
// Sources, lowest priority first:
//  1. built-in defaults
//  2. portfolio.yaml in the working directory, or the file given with --config
//  3. PORTFOLIO_* environment variables (a .env file is loaded into the
//     environment at startup); the bare PORT variable is honoured too
//  4. command line flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "PORTFOLIO"

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "portfolio.yaml"

type Config struct {
	Port         int    `mapstructure:"port"`
	OutputDir    string `mapstructure:"outputDir"`
	AssetsDir    string `mapstructure:"assetsDir"`
	TemplatesDir string `mapstructure:"templatesDir"`
	Dev          bool   `mapstructure:"dev"`
	LogLevel     string `mapstructure:"logLevel"`
	SiteURL      string `mapstructure:"siteURL"`
}

// env names for each key, in priority order.
var envNames = map[string][]string{
	"port":         {EnvPrefix + "_PORT", "PORT"},
	"outputDir":    {EnvPrefix + "_OUTPUT_DIR"},
	"assetsDir":    {EnvPrefix + "_ASSETS_DIR"},
	"templatesDir": {EnvPrefix + "_TEMPLATES_DIR"},
	"dev":          {EnvPrefix + "_DEV"},
	"logLevel":     {EnvPrefix + "_LOG_LEVEL"},
	"siteURL":      {EnvPrefix + "_SITE_URL"},
}

// flag names bound to each key when the flag set defines them.
var flagNames = map[string]string{
	"port":         "port",
	"outputDir":    "out",
	"templatesDir": "templates",
	"dev":          "dev",
	"assetsDir":    "assets",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("outputDir", "public")
	v.SetDefault("assetsDir", "assets")
	v.SetDefault("templatesDir", "")
	v.SetDefault("dev", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("siteURL", "")
}

// Load resolves the configuration. cfgFile may be empty, in which case a
// missing portfolio.yaml is not an error. The returned string is the config
// file that was read, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, string, error) {
	v := viper.New()
	setDefaults(v)

	// The file is named explicitly rather than searched for: viper's name
	// search also matches an extensionless "portfolio", which is the binary.
	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			v.SetConfigFile(DefaultFile)
		}
	} else {
		v.SetConfigFile(cfgFile)
	}

	for key, names := range envNames {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Config{}, "", fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for key, name := range flagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, "", fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	used := v.ConfigFileUsed()
	if used != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, "", fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, used, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, used, err
	}
	return cfg, used, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("config: outputDir must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logLevel %q", c.LogLevel)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
