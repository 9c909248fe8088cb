package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/min1324/container"
	"github.com/min1324/container/stack"
)

const (
	capacityFlag        = "capacity"
	growThresholdFlag   = "grow-threshold"
	shrinkThresholdFlag = "shrink-threshold"
	logFormatFlag       = "log-format"
	logLevelFlag        = "log-level"

	capacityConf        = "capacity"
	growThresholdConf   = "threshold.grow"
	shrinkThresholdConf = "threshold.shrink"
	logFormatConf       = "log.format"
	logLevelConf        = "log.level"
)

// Config is the configuration shared by every subcommand.
type Config struct {
	Capacity        int
	GrowThreshold   float64
	ShrinkThreshold float64
	Log             LogConfig
}

type LogConfig struct {
	// Format is "text" or "json".
	Format string
	// Level is one of "none", "debug", "info", "warn" or "error".
	Level string
}

// DefaultConfig returns the configuration used when no flag, env or config file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Capacity:        container.DefaultCapacity,
		GrowThreshold:   stack.DefaultGrowThreshold,
		ShrinkThreshold: stack.DefaultShrinkThreshold,
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
	}
}

// ReadConfig collects the configuration from viper. The 'config.yaml' file is loaded from
// '/etc/container', '$HOME/.container', or the current working directory. If no configuration
// file is present, flags, env and the defaults apply.
func ReadConfig() (*Config, error) {
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	config := &Config{
		Capacity:        viper.GetInt(capacityConf),
		GrowThreshold:   viper.GetFloat64(growThresholdConf),
		ShrinkThreshold: viper.GetFloat64(shrinkThresholdConf),
		Log: LogConfig{
			Format: viper.GetString(logFormatConf),
			Level:  viper.GetString(logLevelConf),
		},
	}
	if err := config.Verify(); err != nil {
		return nil, err
	}
	return config, nil
}

// Verify checks the thresholds, the same check New applies.
func (c *Config) Verify() error {
	return container.ValidateThresholds(c.GrowThreshold, c.ShrinkThreshold)
}

// MustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func MustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func MustBindEnv(input ...string) {
	if err := viper.BindEnv(input...); err != nil {
		panic("failed to bind env key: " + err.Error())
	}
}

// bindContainerFlags binds the persistent flags of command to the equivalent config value
// being managed by viper. This bridges the config between cobra flags and viper flags.
func bindContainerFlags(command *cobra.Command) {
	defaultConfig := DefaultConfig()
	flags := command.PersistentFlags()

	flags.Int(capacityFlag, defaultConfig.Capacity, "the initial capacity of the stack and queue buffers")
	MustBindPFlag(capacityConf, flags.Lookup(capacityFlag))
	MustBindEnv(capacityConf, "CONTAINER_CAPACITY")

	flags.Float64(growThresholdFlag, defaultConfig.GrowThreshold, "the load factor in [0,1] at which a buffer doubles")
	MustBindPFlag(growThresholdConf, flags.Lookup(growThresholdFlag))
	MustBindEnv(growThresholdConf, "CONTAINER_GROW_THRESHOLD", "CONTAINER_THRESHOLD_GROW")

	flags.Float64(shrinkThresholdFlag, defaultConfig.ShrinkThreshold, "the load factor in [0,1] at which a buffer halves")
	MustBindPFlag(shrinkThresholdConf, flags.Lookup(shrinkThresholdFlag))
	MustBindEnv(shrinkThresholdConf, "CONTAINER_SHRINK_THRESHOLD", "CONTAINER_THRESHOLD_SHRINK")

	flags.String(logFormatFlag, defaultConfig.Log.Format, "the log format to output logs in")
	MustBindPFlag(logFormatConf, flags.Lookup(logFormatFlag))
	MustBindEnv(logFormatConf, "CONTAINER_LOG_FORMAT")

	flags.String(logLevelFlag, defaultConfig.Log.Level, "the log level to use")
	MustBindPFlag(logLevelConf, flags.Lookup(logLevelFlag))
	MustBindEnv(logLevelConf, "CONTAINER_LOG_LEVEL")
}
