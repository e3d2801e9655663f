package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/handlers/v1alpha1/mappers"
	"github.com/feedrate/feedrate-calculator/internal/service"
	"github.com/spf13/cobra"
)

type OptionsOptions struct {
	GlobalOptions
}

func DefaultOptionsOptions() *OptionsOptions {
	return &OptionsOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdOptions() *cobra.Command {
	o := DefaultOptionsOptions()
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List machines, cutters, flute counts, aggression levels and materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *OptionsOptions) Run(ctx context.Context, args []string) error {
	opts, err := o.options(ctx)
	if err != nil {
		return fmt.Errorf("listing options: %w", err)
	}
	if ok, err := printStructured(o.out, o.Output, opts); ok {
		return err
	}

	w := tabwriter.NewWriter(o.out, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "MACHINE\tDEPTH FACTOR")
	for _, m := range opts.Machines {
		fmt.Fprintf(w, "%s\t%g\n", m.Name, m.Factor)
	}

	fmt.Fprintln(w, "\nCUTTER\tDIAMETER (MM)\tCLASS")
	for _, c := range opts.Cutters {
		fmt.Fprintf(w, "%s\t%g\t%d\n", c.Label, c.DiameterMm, c.Class)
	}

	fmt.Fprintln(w, "\nAGGRESSION\tDEPTH FACTOR")
	for _, a := range opts.Aggressions {
		fmt.Fprintf(w, "%s\t%g\n", a.Name, a.Factor)
	}

	fmt.Fprintln(w, "\nMATERIAL")
	for _, m := range opts.Materials {
		fmt.Fprintln(w, m.Name)
	}

	flutes := make([]string, 0, len(opts.Flutes))
	for _, f := range opts.Flutes {
		flutes = append(flutes, strconv.Itoa(f))
	}
	units := make([]string, 0, len(opts.Units))
	for _, u := range opts.Units {
		units = append(units, string(u))
	}
	formats := make([]string, 0, len(opts.ChartFormats))
	for _, f := range opts.ChartFormats {
		formats = append(formats, string(f))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "FLUTES\t%s\n", strings.Join(flutes, ", "))
	fmt.Fprintf(w, "UNITS\t%s\n", strings.Join(units, ", "))
	fmt.Fprintf(w, "CHART FORMATS\t%s\n", strings.Join(formats, ", "))
	fmt.Fprintf(w, "RPM\t%g-%g (default %g)\n", opts.MinRpm, opts.MaxRpm, opts.Defaults.Rpm)
	return w.Flush()
}

func (o *OptionsOptions) options(ctx context.Context) (*v1alpha1.Options, error) {
	if c := o.Client(); c != nil {
		return c.Options(ctx)
	}
	opts := mappers.OptionsToApi(service.NewCalculatorService().Options())
	return &opts, nil
}
