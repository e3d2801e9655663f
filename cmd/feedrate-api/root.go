package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "feedrate-api",
	Short: "feedrate-api serves the feed rate calculator over HTTP.",
}

func init() {
	rootCmd.AddCommand(runCmd)
}
