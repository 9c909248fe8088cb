package main

import (
	"os"

	"github.com/min1324/container/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(cmd.NewListCommand())
	rootCmd.AddCommand(cmd.NewStackCommand())
	rootCmd.AddCommand(cmd.NewQueueCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
