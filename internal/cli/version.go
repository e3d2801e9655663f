package cli

import (
	"context"
	"fmt"

	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	GlobalOptions
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Args:  cobra.NoArgs,
		Short: "Print feedrate version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
	}
	o.Bind(cmd.Flags())
	return cmd
}

type versionReport struct {
	Client version.Info   `json:"client"`
	Server *v1alpha1.Info `json:"server,omitempty"`
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	report := versionReport{Client: version.Get()}
	if c := o.Client(); c != nil {
		info, err := c.Info(ctx)
		if err != nil {
			return fmt.Errorf("reading server version: %w", err)
		}
		report.Server = info
	}

	if ok, err := printStructured(o.out, o.Output, report); ok {
		return err
	}
	fmt.Fprintf(o.out, "feedrate version: %s\n", report.Client.String())
	if report.Server != nil {
		fmt.Fprintf(o.out, "feedrate-api version: %s\n", report.Server.VersionName)
	}
	return nil
}
