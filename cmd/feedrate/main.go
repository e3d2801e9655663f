package main

import (
	"os"

	"github.com/feedrate/feedrate-calculator/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewFeedRateCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewFeedRateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedrate [flags] [options]",
		Short: "feedrate computes feed rate, depth of cut and chip load for a CNC router.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCalc())
	cmd.AddCommand(cli.NewCmdOptions())
	cmd.AddCommand(cli.NewCmdChart())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
