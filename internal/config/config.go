package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "AWSAUDIT"
	ConfigName     = "awsaudit"
	DefaultRegion  = "us-east-1"
	DefaultWorkers = 4
)

// Config holds everything awsaudit reads from file, environment and flags.
type Config struct {
	AWS         AWSConfig     `mapstructure:"aws"`
	Regions     []string      `mapstructure:"regions"`
	Concurrency int           `mapstructure:"concurrency"`
	KeepGoing   bool          `mapstructure:"keep_going"`
	Pricing     PricingConfig `mapstructure:"pricing"`
	Email       EmailConfig   `mapstructure:"email"`
	Output      OutputConfig  `mapstructure:"output"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

type AWSConfig struct {
	Profile         string `mapstructure:"profile"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	SessionToken    string `mapstructure:"session_token"`
}

type PricingConfig struct {
	Region string `mapstructure:"region"`
}

type EmailConfig struct {
	Region string   `mapstructure:"region"`
	From   string   `mapstructure:"from"`
	To     []string `mapstructure:"to"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// flagKeys maps persistent flag names to the config keys they override.
var flagKeys = map[string]string{
	"profile":    "aws.profile",
	"region":     "aws.region",
	"regions":    "regions",
	"output":     "output.format",
	"out-file":   "output.file",
	"log-level":  "logging.level",
	"keep-going": "keep_going",
}

var regionPattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d+$`)

// Load resolves configuration from defaults, the config file, AWSAUDIT_*
// environment variables and any changed flags, in that order of precedence.
// A missing config file is only an error when configPath names one.
func Load(fs afero.Fs, configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".awsaudit"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("aws.region", DefaultRegion)
	v.SetDefault("regions", []string{})
	v.SetDefault("concurrency", DefaultWorkers)
	v.SetDefault("keep_going", false)

	v.SetDefault("pricing.region", DefaultRegion)

	v.SetDefault("email.region", DefaultRegion)
	v.SetDefault("email.to", []string{})

	v.SetDefault("output.format", "table")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Validate checks a resolved configuration.
func Validate(cfg *Config) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"table": true,
		"html":  true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}

	if (cfg.AWS.AccessKeyID == "") != (cfg.AWS.SecretAccessKey == "") {
		return errors.New("aws.access_key_id and aws.secret_access_key must be set together")
	}

	for _, region := range append([]string{cfg.AWS.Region, cfg.Pricing.Region, cfg.Email.Region}, cfg.Regions...) {
		if !IsValidRegionFormat(region) {
			return fmt.Errorf("invalid region: %q", region)
		}
	}

	return nil
}

// IsValidRegionFormat matches names like us-east-1 or us-gov-west-1.
func IsValidRegionFormat(region string) bool {
	return regionPattern.MatchString(region)
}
