package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the errstr command settings.
type Config struct {
	Context string
	JSON    bool
	Verbose bool
	Debug   bool
}

// Load merges command-line flags, ERRSTR_* environment variables and an
// optional config file, flags winning. It returns the configuration and
// the remaining positional arguments.
func Load(args []string) (*Config, []string, error) {
	config := &Config{}

	// Define flags
	fs := pflag.NewFlagSet("errstr", pflag.ContinueOnError)
	fs.StringVar(&config.Context, "context", "", "Context text attached to every rendered error")
	fs.BoolVar(&config.JSON, "json", false, "Emit logs as JSON lines")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&config.Debug, "debug", false, "Enable debugging mode")

	// Parse flags
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Load configuration from file
	v := viper.New()
	if path := os.Getenv("ERRSTR_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("errstr")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath("$HOME/.config")
	}

	v.SetEnvPrefix("ERRSTR")
	v.AutomaticEnv()

	// A missing config file is fine; anything else is a real failure.
	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override config file values with command line flags
	if err := v.BindPFlags(fs); err != nil {
		return nil, nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	// Unmarshal the configuration
	if err := v.Unmarshal(config); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, fs.Args(), nil
}
