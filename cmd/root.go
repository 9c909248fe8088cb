// Package cmd contains all the commands included in the container binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with CONTAINER, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("CONTAINER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/container", "$HOME/.container", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	cmd := &cobra.Command{
		Use:   "container",
		Short: "Exercise the list, stack and queue containers",
		Long: `Exercise the list, stack and queue containers.

Every subcommand loads its integer arguments into one container, runs a fixed
sequence of operations on it and prints the state after each step.`,
		SilenceUsage: true,
	}
	bindContainerFlags(cmd)

	return cmd
}
