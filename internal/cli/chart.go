package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/handlers/v1alpha1/mappers"
	"github.com/feedrate/feedrate-calculator/internal/handlers/validator"
	"github.com/feedrate/feedrate-calculator/internal/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ChartOptions struct {
	GlobalOptions

	Machine    string
	Cutter     string
	Flutes     int
	Aggression string
	Unit       string
	RPMFrom    float64
	RPMTo      float64
	RPMStep    float64
	Format     string
	File       string
	MaxRows    int
}

func DefaultChartOptions() *ChartOptions {
	calc := DefaultCalcOptions()
	return &ChartOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Machine:       calc.Machine,
		Cutter:        calc.Cutter,
		Flutes:        calc.Flutes,
		Aggression:    calc.Aggression,
		Unit:          calc.Unit,
		RPMStep:       service.DefaultChartRPMStep,
		Format:        string(service.ChartFormatCSV),
		MaxRows:       service.DefaultChartMaxRows,
	}
}

func NewCmdChart() *cobra.Command {
	o := DefaultChartOptions()
	cmd := &cobra.Command{
		Use:     "chart [FLAGS]",
		Short:   "Write a feed chart for every material over a spindle speed range",
		Example: "chart --machine MegaV --cutter 6mm --format xlsx --file chart.xlsx",
		Args:    cobra.NoArgs,
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

func (o *ChartOptions) Bind(fs *pflag.FlagSet) {
	o.BindServer(fs)

	fs.StringVar(&o.Machine, "machine", o.Machine, "Machine model.")
	fs.StringVar(&o.Cutter, "cutter", o.Cutter, `Cutter diameter, e.g. 1/8" or 6mm.`)
	fs.IntVar(&o.Flutes, "flutes", o.Flutes, "Number of flutes (1-4).")
	fs.StringVar(&o.Aggression, "aggression", o.Aggression, "Aggression level.")
	fs.StringVar(&o.Unit, "unit", o.Unit, "Unit of the results: mm or inch.")
	fs.Float64Var(&o.RPMFrom, "rpm-from", o.RPMFrom, "First spindle speed, the minimum when unset.")
	fs.Float64Var(&o.RPMTo, "rpm-to", o.RPMTo, "Last spindle speed, the maximum when unset.")
	fs.Float64Var(&o.RPMStep, "rpm-step", o.RPMStep, "Spindle speed increment.")
	fs.StringVarP(&o.Format, "format", "f", o.Format, fmt.Sprintf("Chart format. One of: (%s).", strings.Join(formatNames(), ", ")))
	fs.StringVar(&o.File, "file", o.File, "Output file, a generated name in the current directory when unset. Use - for stdout.")
	fs.IntVar(&o.MaxRows, "max-rows", o.MaxRows, "Maximum number of spindle speeds per material, local charts only.")
}

func formatNames() []string {
	var names []string
	for _, f := range service.ChartFormats() {
		names = append(names, string(f))
	}
	return names
}

func (o *ChartOptions) Validate(args []string) error {
	v := validator.NewValidator()
	v.Register(validator.NewChartValidationRules()...)
	return v.Struct(o.params())
}

func (o *ChartOptions) params() v1alpha1.GetChartParams {
	format := v1alpha1.ChartFormat(o.Format)
	params := v1alpha1.GetChartParams{
		Machine:    &o.Machine,
		Cutter:     &o.Cutter,
		Flutes:     &o.Flutes,
		Aggression: &o.Aggression,
		Unit:       &o.Unit,
		RpmStep:    &o.RPMStep,
		Format:     &format,
	}
	if o.RPMFrom != 0 {
		params.RpmFrom = &o.RPMFrom
	}
	if o.RPMTo != 0 {
		params.RpmTo = &o.RPMTo
	}
	return params
}

func (o *ChartOptions) Run(ctx context.Context, args []string) error {
	chart, err := o.generate(ctx)
	if err != nil {
		return fmt.Errorf("generating chart: %w", err)
	}

	if o.File == "-" {
		_, err := o.out.Write(chart.Content)
		return errors.Wrap(err, "writing chart to stdout")
	}

	path := o.File
	if path == "" {
		path = chart.Filename
	}
	if err := os.WriteFile(path, chart.Content, 0o644); err != nil {
		return errors.Wrapf(err, "writing chart to %s", path)
	}
	fmt.Fprintf(o.out, "Chart written to %s\n", path)
	return nil
}

type chartFile struct {
	Filename string
	Content  []byte
}

func (o *ChartOptions) generate(ctx context.Context) (*chartFile, error) {
	if c := o.Client(); c != nil {
		chart, err := c.Chart(ctx, o.params())
		if err != nil {
			return nil, err
		}
		return &chartFile{Filename: chart.Filename, Content: chart.Content}, nil
	}

	opts, err := mappers.ChartParamsToOptions(o.params())
	if err != nil {
		return nil, err
	}
	chart, err := service.NewChartService(o.MaxRows).Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &chartFile{Filename: chart.Filename, Content: chart.Content}, nil
}
